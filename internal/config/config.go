package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName        = "Go Datewheel"
	AppID          = "com.github.tartampluch.go-datewheel"
	LogFileName    = "app.log"
	TUILogFileName = "tui.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion = "version"
	FlagDebug   = "debug"
	FlagLang    = "lang"
	FlagYears   = "years"
	FlagFormat  = "format"
	FlagPicker  = "picker"
	FlagVCard   = "vcard"
	FlagPrint   = "print"
	FlagServe   = "serve"

	FlagDescVersion = "Show application version and exit"
	FlagDescDebug   = "Enable debug logging"
	FlagDescLang    = "Locale used for wheel order and labels (e.g. en-US, de, ja). Defaults to the host locale"
	FlagDescYears   = "Number of years offered on the year wheel"
	FlagDescFormat  = "Clock format of the time picker: 12 or 24"
	FlagDescPicker  = "Picker shown first: birthday, future or timer"
	FlagDescVCard   = "Path to a .vcf file whose first BDAY seeds the birthday picker"
	FlagDescPrint   = "Print the selected values as vCard and iCalendar on exit"
	FlagDescServe   = "Serve the reminder as an iCalendar feed on this localhost port (empty disables)"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// Picker names accepted by -picker.
const (
	PickerBirthday = "birthday"
	PickerFuture   = "future"
	PickerTimer    = "timer"
)

// Clock formats accepted by -format.
const (
	Format12 = "12"
	Format24 = "24"
)

// -----------------------------------------------------------------------------
// Calendar Defaults
// -----------------------------------------------------------------------------

const (
	// ReferenceLeapYear sizes month lengths when the birth year is unknown,
	// so that February 29 stays selectable.
	ReferenceLeapYear = 2024

	// DefaultCountYears is the span of the year wheel.
	DefaultCountYears = 120

	// MinYear and MaxYear bound the years LastDayOfMonth will answer for.
	MinYear = 1
	MaxYear = 9999

	MonthsPerYear  = 12
	HoursPerDay    = 24
	HoursHalfDay   = 12
	MinutesPerHour = 60
	SecondsPerMin  = 60
)

// -----------------------------------------------------------------------------
// Locale Defaults
// -----------------------------------------------------------------------------

const (
	// DefaultLocale is used when the host locale cannot be detected.
	DefaultLocale = "en-US"

	// DefaultLanguage is the bundle's base language.
	DefaultLanguage = "en"

	// FallbackDateOrder is the component order used when no usable
	// short date format is available.
	FallbackDateOrder = "YMD"

	LocaleFilePrefix = "active."
	LocaleFileSuffix = ".json"
	LocaleDir        = "locales"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	WindowWidth  = 560
	WindowHeight = 520

	// Wheel geometry (Fyne units).
	WheelHeight       = 180
	WheelRowHeight    = 36
	WheelTextSize     = 18
	WheelYearWidth    = 100
	WheelDayWidth     = 80
	WheelDefaultWidth = 120

	// Preference Keys
	PrefLanguage  = "language"
	PrefFormat    = "clock_format"
	PrefYears     = "count_years"
	PrefLastRun   = "last_run_version"
	PrefLastPanel = "last_panel"

	// Display
	UnknownYearPlaceholder = "- - - -"
	FormatTwoDigits        = "%02d"
	FormatTimeOfDay        = "15:04"
	DateFormatDisplay      = "2006-01-02"
	FormatSummary          = "%s: %s  %s  %s"

	// Terminal rendering
	TUIVisibleRows = 5
	TUIColumnWidth = 12
	TUIDivider     = "│"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyDateFormatShort = "date_format_short"
	TKeyYearUnknown     = "year_unknown"
	TKeyAM              = "am"
	TKeyPM              = "pm"

	// Month names are stored as month_1 ... month_12.
	TKeyMonthPrefix = "month_"

	TKeyWinTitle      = "win_title"
	TKeyTabBirthday   = "tab_birthday"
	TKeyTabFuture     = "tab_future"
	TKeyTabTimer      = "tab_timer"
	TKeyLblSelected   = "lbl_selected"
	TKeyLblSettings   = "lbl_settings"
	TKeyLblLanguage   = "lbl_language"
	TKeyLblFormat     = "lbl_clock_format"
	TKeyLblYears      = "lbl_years"
	TKeyHelpYears     = "help_years"
	TKeyFormat12      = "format_12h"
	TKeyFormat24      = "format_24h"
	TKeyBtnApply      = "btn_apply"
	TKeyLblFooter     = "lbl_footer"
	TKeyErrYearsReq   = "err_years_required"
	TKeyErrYearsRange = "err_years_range"
)

// MonthKeys lists the month name translation keys, January first.
var MonthKeys = []string{
	TKeyMonthPrefix + "1", TKeyMonthPrefix + "2", TKeyMonthPrefix + "3",
	TKeyMonthPrefix + "4", TKeyMonthPrefix + "5", TKeyMonthPrefix + "6",
	TKeyMonthPrefix + "7", TKeyMonthPrefix + "8", TKeyMonthPrefix + "9",
	TKeyMonthPrefix + "10", TKeyMonthPrefix + "11", TKeyMonthPrefix + "12",
}

// Limits for the year span entered in settings.
const (
	MinCountYears = 1
	MaxCountYears = 500
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Datewheel//Export//EN"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "godatewheel"

	PropUID      = "UID"
	PropSummary  = "SUMMARY"
	PropDTStart  = "DTSTART"
	PropDTStamp  = "DTSTAMP"
	PropVersion  = "VERSION"
	PropProdid   = "PRODID"
	PropCalScale = "CALSCALE"

	VCardBDAY    = "BDAY"
	VCardFN      = "FN"
	VCardN       = "N"
	VCardVersion = "4.0"

	// Date layouts accepted in vCard BDAY fields.
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	// Date layouts written to vCard BDAY fields.
	FormatVCardFull   = "%04d-%02d-%02d"
	FormatVCardNoYear = "--%02d%02d"

	FormatUID          = "%s-%s@%s"
	UIDLayout          = "20060102T150405"
	DefaultEventName   = "Reminder"
	DefaultContactName = "Unknown"
)

// -----------------------------------------------------------------------------
// Reminder Feed (HTTP)
// -----------------------------------------------------------------------------

const (
	LocalhostBindAddr = "127.0.0.1"
	AddrSeparator     = ":"
	RouteRoot         = "/"

	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "10"
	AllowedMethods     = "GET, HEAD"

	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`

	HTTPMsgInitializing = "Reminder not published yet, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app cache dir"
	ErrAppFailed      = "application failed unexpectedly"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrLocaleTag      = "invalid locale tag"
	ErrHostLocale     = "could not detect host locale"
	ErrVCardOpen      = "failed to open vCard file"
	ErrVCardParse     = "failed to parse vCard stream"
	ErrVCardNoBDAY    = "no vCard with a BDAY property"
	ErrVCardEncode    = "failed to encode vCard"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrDateParse      = "unable to parse date"
	ErrPickerName     = "unknown picker"
	ErrFormatName     = "unknown clock format"
	ErrYearsFlag      = "year span out of range"
	ErrFlagParse      = "invalid command line"
	ErrPrint          = "failed to print selected values"
	ErrServerStartup  = "server startup failed"
	ErrServerShutdown = "server shutdown failed"
	ErrWriteResp      = "failed to write HTTP response"
	ErrTUIFailed      = "terminal program failed"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down UI"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgLocaleChanged  = "Active locale changed"
	MsgTransMissing   = "Missing translation key"
	MsgFormatMissing  = "Short date format unavailable, using fallback order"
	MsgFormatInvalid  = "Short date format unusable, using fallback order"
	MsgComposeSkipped = "Unrepresentable date, bound value left unchanged"
	MsgDayClamped     = "Day selection clamped to month length"
	MsgRangeFallback  = "Month length unavailable, using one-day month"
	MsgSelectIgnored  = "Selection outside candidate list ignored"
	MsgBoundUpdated   = "Bound value updated"
	MsgResync         = "Wheels resynchronized from bound value"
	MsgWheelRekeyed   = "Wheel remounted after candidate list resize"
	MsgSeedLoaded     = "Birthday seeded from vCard"
	MsgSettingsSaved  = "Settings applied"
	MsgEventEncoded   = "iCalendar event encoded"
	MsgServerListen   = "Reminder feed listening"
	MsgServerStop     = "Shutting down reminder feed..."
	MsgCacheUpdated   = "Reminder feed updated"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyFormat    = "format"
	LogKeyOrder     = "order"
	LogKeyPicker    = "picker"
	LogKeyWheel     = "wheel"
	LogKeyValue     = "value"
	LogKeyOld       = "old"
	LogKeyNew       = "new"
	LogKeyYear      = "year"
	LogKeyMonth     = "month"
	LogKeyDay       = "day"
	LogKeyHour      = "hour"
	LogKeyMinute    = "minute"
	LogKeyCount     = "count"
	LogKeyPath      = "path"
	LogKeyAddr      = "addr"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain     = "main"
	CompCalendar = "calendar"
	CompLocale   = "locale"
	CompPicker   = "picker"
	CompExport   = "export"
	CompUI       = "ui"
	CompTUI      = "tui"
	CompFeed     = "feed"
)
