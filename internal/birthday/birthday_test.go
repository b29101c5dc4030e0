package birthday_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-datewheel/internal/birthday"
	"github.com/tartampluch/go-datewheel/internal/calendar"
)

func TestNew_SelectsVariant(t *testing.T) {
	assert.Equal(t, birthday.MonthDay{Month: 2, Day: 29}, birthday.New(calendar.UnknownYear, 2, 29))
	assert.Equal(t, birthday.FullDate{Year: 1990, Month: 5, Day: 17}, birthday.New(calendar.Known(1990), 5, 17))
}

func TestComponents(t *testing.T) {
	y, m, d := birthday.MonthDay{Month: 4, Day: 30}.Components()
	assert.False(t, y.IsKnown())
	assert.Equal(t, 4, m)
	assert.Equal(t, 30, d)

	y, m, d = birthday.FullDate{Year: 1985, Month: 12, Day: 1}.Components()
	assert.Equal(t, calendar.Known(1985), y)
	assert.Equal(t, 12, m)
	assert.Equal(t, 1, d)
}

func TestString(t *testing.T) {
	assert.Equal(t, "--02-29", birthday.MonthDay{Month: 2, Day: 29}.String())
	assert.Equal(t, "1990-05-07", birthday.FullDate{Year: 1990, Month: 5, Day: 7}.String())
}

func TestDate_Comparable(t *testing.T) {
	var a, b birthday.Date = birthday.MonthDay{Month: 1, Day: 1}, birthday.MonthDay{Month: 1, Day: 1}
	assert.True(t, a == b)

	var c birthday.Date = birthday.FullDate{Year: 2000, Month: 1, Day: 1}
	assert.False(t, a == c)
}
