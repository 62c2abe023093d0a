package theme

// Tokens read by the label engine.
const (
	TokenBarLabel     = "--chart-mixbar"
	TokenLineLabel    = "--chart-mixline"
	TokenLabelOutline = "--chart-label-outline"
	TokenLabelChip    = "--chart-label-chip"
	TokenLeader       = "--chart-leader"
	TokenCenterText   = "--chart-center-text"
	TokenCenterDisk   = "--chart-center-disk"
	TokenGaugeRule    = "--chart-gauge-rule"
	TokenGaugeText    = "--chart-gauge-text"
	TokenGaugeOutline = "--chart-gauge-outline"
	TokenHighlight    = "--bg-chart-highlight"
)

// Tokens read by the host chart when drawing axes and series.
const (
	TokenAxisText = "--chart-axis-text"
	TokenGrid     = "--chart-grid"
	TokenTitle    = "--chart-title"
	TokenBar      = "--chart-bar"
	TokenLine     = "--chart-line"
)

// Light is the default palette.
var Light = Table{
	TokenBarLabel:     "#6d5a21",
	TokenLineLabel:    "#249473",
	TokenLabelOutline: "#ffffff",
	TokenLabelChip:    "rgba(255,255,255,0.85)",
	TokenLeader:       "#333333",
	TokenCenterText:   "#121212",
	TokenCenterDisk:   "#f5f5f0",
	TokenGaugeRule:    "rgba(0,0,0,0.40)",
	TokenGaugeText:    "#ffffff",
	TokenGaugeOutline: "#000000",
	TokenHighlight:    "rgba(145,128,80,0.12)",

	"--stat-individual01": "#7c108f",
	"--stat-individual02": "#2b8f10",

	"--bg-chart-line01-bullet01": "#ffffff",
	"--bg-chart-line01-bullet02": "#b58df0",
	"--bg-chart-line01-bullet03": "#7c108f",
	"--bg-chart-line02-bullet01": "#ffffff",
	"--bg-chart-line02-bullet02": "#8fd97a",
	"--bg-chart-line02-bullet03": "#2b8f10",

	"--chart-slice01": "#249473",
	"--chart-slice02": "#ec8f53",
	"--chart-slice03": "#90c9ff",
	"--chart-slice04": "#c1a770",

	TokenBar:      "#918050",
	TokenLine:     "#249473",
	TokenAxisText: "#666666",
	TokenGrid:     "rgba(0,0,0,0.08)",
	TokenTitle:    "#121212",
}

// Dark is an alternative palette for dark backgrounds.
var Dark = Light.Merge(Table{
	TokenBarLabel:     "#e4d3a0",
	TokenLineLabel:    "#7ee0c0",
	TokenLabelOutline: "#1e1e2e",
	TokenLabelChip:    "rgba(30,30,46,0.85)",
	TokenLeader:       "#cccccc",
	TokenCenterText:   "#f8f8f2",
	TokenCenterDisk:   "#2a2a3e",
	TokenGaugeRule:    "rgba(255,255,255,0.40)",
	TokenHighlight:    "rgba(255,255,255,0.08)",
	TokenAxisText:     "#a6adc8",
	TokenGrid:         "rgba(255,255,255,0.10)",
	TokenTitle:        "#f8f8f2",
})

// Builtin lists the palettes available without configuration.
var Builtin = map[string]Table{
	"light": Light,
	"dark":  Dark,
}
