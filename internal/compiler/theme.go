package compiler

// DarkMode selects how dark: variants are compiled. The upstream docs
// are ambiguous about a default, so the strategy is an explicit
// configuration value on the Theme.
type DarkMode int

const (
	// DarkModeMedia wraps dark rules in @media (prefers-color-scheme:dark).
	DarkModeMedia DarkMode = iota
	// DarkModeClass prefixes dark rules with a .dark ancestor selector.
	DarkModeClass
)

// Theme holds the static scale tables the parsers and variant resolver
// consult. It is immutable for the lifetime of a session; concurrent
// readers need no locking.
type Theme struct {
	Spacing     map[string]string            // scale index -> length
	Colors      map[string]map[string]string // name -> shade -> hex ("" shade for single-value colors)
	Breakpoints map[string]string            // name -> min-width
	FontSizes   map[string][2]string         // name -> [font-size, line-height]
	Dark        DarkMode
	GroupClass  string // ancestor marker class, default "group"
	PeerClass   string // sibling marker class, default "peer"
}

// breakpointOrder fixes the emission order of responsive wrappers so
// generated stylesheets cascade smallest-first regardless of token
// insertion order inside one wrapper group.
var breakpointOrder = []string{"sm", "md", "lg", "xl", "2xl"}

// DefaultTheme returns the built-in scale tables. Values follow the
// widely adopted utility-class convention so tokens like p-4 and
// bg-blue-500 resolve to the expected declarations.
func DefaultTheme() *Theme {
	return &Theme{
		Spacing:     defaultSpacing,
		Colors:      defaultColors,
		Breakpoints: defaultBreakpoints,
		FontSizes:   defaultFontSizes,
		Dark:        DarkModeMedia,
		GroupClass:  "group",
		PeerClass:   "peer",
	}
}

var defaultBreakpoints = map[string]string{
	"sm":  "640px",
	"md":  "768px",
	"lg":  "1024px",
	"xl":  "1280px",
	"2xl": "1536px",
}

var defaultSpacing = map[string]string{
	"0":   "0px",
	"px":  "1px",
	"0.5": "0.125rem",
	"1":   "0.25rem",
	"1.5": "0.375rem",
	"2":   "0.5rem",
	"2.5": "0.625rem",
	"3":   "0.75rem",
	"3.5": "0.875rem",
	"4":   "1rem",
	"5":   "1.25rem",
	"6":   "1.5rem",
	"7":   "1.75rem",
	"8":   "2rem",
	"9":   "2.25rem",
	"10":  "2.5rem",
	"11":  "2.75rem",
	"12":  "3rem",
	"14":  "3.5rem",
	"16":  "4rem",
	"20":  "5rem",
	"24":  "6rem",
	"28":  "7rem",
	"32":  "8rem",
	"36":  "9rem",
	"40":  "10rem",
	"44":  "11rem",
	"48":  "12rem",
	"52":  "13rem",
	"56":  "14rem",
	"60":  "15rem",
	"64":  "16rem",
	"72":  "18rem",
	"80":  "20rem",
	"96":  "24rem",
}

var defaultFontSizes = map[string][2]string{
	"xs":   {"0.75rem", "1rem"},
	"sm":   {"0.875rem", "1.25rem"},
	"base": {"1rem", "1.5rem"},
	"lg":   {"1.125rem", "1.75rem"},
	"xl":   {"1.25rem", "1.75rem"},
	"2xl":  {"1.5rem", "2rem"},
	"3xl":  {"1.875rem", "2.25rem"},
	"4xl":  {"2.25rem", "2.5rem"},
	"5xl":  {"3rem", "1"},
	"6xl":  {"3.75rem", "1"},
}

var defaultColors = map[string]map[string]string{
	"inherit":     {"": "inherit"},
	"current":     {"": "currentColor"},
	"transparent": {"": "transparent"},
	"white":       {"": "#ffffff"},
	"black":       {"": "#000000"},
	"slate": {
		"50": "#f8fafc", "100": "#f1f5f9", "200": "#e2e8f0", "300": "#cbd5e1",
		"400": "#94a3b8", "500": "#64748b", "600": "#475569", "700": "#334155",
		"800": "#1e293b", "900": "#0f172a",
	},
	"gray": {
		"50": "#f9fafb", "100": "#f3f4f6", "200": "#e5e7eb", "300": "#d1d5db",
		"400": "#9ca3af", "500": "#6b7280", "600": "#4b5563", "700": "#374151",
		"800": "#1f2937", "900": "#111827",
	},
	"red": {
		"50": "#fef2f2", "100": "#fee2e2", "200": "#fecaca", "300": "#fca5a5",
		"400": "#f87171", "500": "#ef4444", "600": "#dc2626", "700": "#b91c1c",
		"800": "#991b1b", "900": "#7f1d1d",
	},
	"orange": {
		"50": "#fff7ed", "100": "#ffedd5", "200": "#fed7aa", "300": "#fdba74",
		"400": "#fb923c", "500": "#f97316", "600": "#ea580c", "700": "#c2410c",
		"800": "#9a3412", "900": "#7c2d12",
	},
	"yellow": {
		"50": "#fefce8", "100": "#fef9c3", "200": "#fef08a", "300": "#fde047",
		"400": "#facc15", "500": "#eab308", "600": "#ca8a04", "700": "#a16207",
		"800": "#854d0e", "900": "#713f12",
	},
	"green": {
		"50": "#f0fdf4", "100": "#dcfce7", "200": "#bbf7d0", "300": "#86efac",
		"400": "#4ade80", "500": "#22c55e", "600": "#16a34a", "700": "#15803d",
		"800": "#166534", "900": "#14532d",
	},
	"teal": {
		"50": "#f0fdfa", "100": "#ccfbf1", "200": "#99f6e4", "300": "#5eead4",
		"400": "#2dd4bf", "500": "#14b8a6", "600": "#0d9488", "700": "#0f766e",
		"800": "#115e59", "900": "#134e4a",
	},
	"blue": {
		"50": "#eff6ff", "100": "#dbeafe", "200": "#bfdbfe", "300": "#93c5fd",
		"400": "#60a5fa", "500": "#3b82f6", "600": "#2563eb", "700": "#1d4ed8",
		"800": "#1e40af", "900": "#1e3a8a",
	},
	"indigo": {
		"50": "#eef2ff", "100": "#e0e7ff", "200": "#c7d2fe", "300": "#a5b4fc",
		"400": "#818cf8", "500": "#6366f1", "600": "#4f46e5", "700": "#4338ca",
		"800": "#3730a3", "900": "#312e81",
	},
	"purple": {
		"50": "#faf5ff", "100": "#f3e8ff", "200": "#e9d5ff", "300": "#d8b4fe",
		"400": "#c084fc", "500": "#a855f7", "600": "#9333ea", "700": "#7e22ce",
		"800": "#6b21a8", "900": "#581c87",
	},
	"pink": {
		"50": "#fdf2f8", "100": "#fce7f3", "200": "#fbcfe8", "300": "#f9a8d4",
		"400": "#f472b6", "500": "#ec4899", "600": "#db2777", "700": "#be185d",
		"800": "#9d174d", "900": "#831843",
	},
}

// lookupColor resolves a color value component like "blue-500", "white"
// or an arbitrary literal. Returns ok=false when the palette has no
// such entry.
func (t *Theme) lookupColor(value string) (string, bool) {
	if v, ok := arbitraryValue(value); ok {
		return v, true
	}
	if c, ok := t.Colors[value]; ok {
		if hex, ok := c[""]; ok {
			return hex, true
		}
		return "", false
	}
	// name-shade split on the last dash: "blue-500"
	idx := lastIndexOutsideBrackets(value, '-')
	if idx <= 0 {
		return "", false
	}
	name, shade := value[:idx], value[idx+1:]
	c, ok := t.Colors[name]
	if !ok {
		return "", false
	}
	hex, ok := c[shade]
	return hex, ok
}

// lookupSpacing resolves a spacing value component: scale index,
// fraction, or arbitrary literal.
func (t *Theme) lookupSpacing(value string) (string, bool) {
	if v, ok := arbitraryValue(value); ok {
		return v, true
	}
	if v, ok := t.Spacing[value]; ok {
		return v, true
	}
	if v, ok := fractionPercent(value); ok {
		return v, true
	}
	switch value {
	case "auto":
		return "auto", true
	case "full":
		return "100%", true
	}
	return "", false
}
