package config

// Plot settings
const (
	DefaultTitle    = "Counts distribution"
	DefaultXDesc    = "Rank"
	DefaultYDesc    = "Counts"
	DefaultGeometry = "1280x960"
	DefaultOutput   = "histogram.png"
)

// Input settings
const (
	DefaultDelimiter = `\t` // escaped form, shown as-is in help output
	DefaultKeyColumn = 1
)

// SaveToStdout is the raw-counts destination that means "write to the console".
const SaveToStdout = "-"

// Text chart settings (canvas size in braille dots)
const (
	TextWidth  = 160
	TextHeight = 80
)

// XPaddingPercent widens the rank axis so the last bar is not flush against the edge.
const XPaddingPercent = 10

// Layout - pixel sizes around the plot area
const (
	Margin     = 20  // Outer margin on every side
	XLabelArea = 70  // Space below the plot for x tick labels and description
	YLabelArea = 100 // Space left of the plot for y tick labels and description
	TitleGap   = 10  // Gap between title and plot area
	TickLength = 5
	MaxTicks   = 10 // Upper bound on labelled ticks per axis
)

// Fonts (points at 72 DPI, so 1pt == 1px)
const (
	TitleFontSize = 40.0
	LabelFontSize = 20.0
	AxisFontSize  = 24.0
)

// Appearance - colours of the raster chart
// Note: every value here can be overridden from a YAML file, see RuntimeConfig.
const (
	// Bar fill (#2A71B0)
	BarColorR = 0x2a
	BarColorG = 0x71
	BarColorB = 0xb0

	// Title, labels and axis lines
	TextColorR = 0
	TextColorG = 0
	TextColorB = 0

	BackgroundColorR = 255
	BackgroundColorG = 255
	BackgroundColorB = 255

	// Bold horizontal mesh lines at labelled ticks
	GridColorR = 0xdc
	GridColorG = 0xdc
	GridColorB = 0xdc

	// Light mesh lines between labelled ticks
	LightGridColorR = 0xf0
	LightGridColorG = 0xf0
	LightGridColorB = 0xf0
)

// MinLightGridSpacing is the pixel distance below which light mesh lines are skipped.
const MinLightGridSpacing = 4
