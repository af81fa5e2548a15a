package geom

// Kind tags the concrete type behind a [Shape].
type Kind int

const (
	KindRect Kind = iota
	KindPath
	KindLabel
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindPath:
		return "path"
	case KindLabel:
		return "label"
	}
	return "unknown"
}

// Role classifies a shape by what it depicts. Sinks use it for CSS classes
// and spreadsheet grouping; the engine never branches on it.
type Role string

const (
	RoleBackground Role = "background"
	RoleGrid       Role = "grid"
	RoleBar        Role = "bar"
	RoleSegment    Role = "segment"
	RoleLine       Role = "line"
	RoleArea       Role = "area"
	RoleMarker     Role = "marker"
	RoleCell       Role = "cell"
	RoleTile       Role = "tile"
	RoleAxisLabel  Role = "axis-label"
	RoleValueLabel Role = "value-label"
	RoleLegend     Role = "legend"
	RoleTitle      Role = "title"
)

// Shape is one paintable primitive: a [Rect], a [Path] or a [Label].
type Shape interface {
	Kind() Kind
	Entrance() Motion
}

// Anchor is the horizontal alignment of a label relative to its x coordinate.
// The values match SVG's text-anchor attribute.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Rect is a filled, optionally rounded rectangle.
type Rect struct {
	X, Y, W, H   float64
	Fill         Color
	CornerRadius float64
	Opacity      float64
	Role         Role
	Enter        Motion
}

func (r Rect) Kind() Kind       { return KindRect }
func (r Rect) Entrance() Motion { return r.Enter }

// Bounds returns the rectangle's geometry without its paint.
func (r Rect) Bounds() Bounds { return Bounds{X: r.X, Y: r.Y, W: r.W, H: r.H} }

// Path is a stroked and/or filled outline. A nil Stroke or Fill means none.
type Path struct {
	Commands    Commands
	Stroke      *Color
	Fill        *Color
	StrokeWidth float64
	Opacity     float64
	Role        Role
	Enter       Motion
}

func (p Path) Kind() Kind       { return KindPath }
func (p Path) Entrance() Motion { return p.Enter }

// D returns the SVG path data for p.
func (p Path) D() string { return p.Commands.String() }

// Label is a single line of text. Y is the baseline.
type Label struct {
	X, Y    float64
	Text    string
	Anchor  Anchor
	Size    float64
	Color   Color
	Opacity float64
	Role    Role
	Enter   Motion
}

func (l Label) Kind() Kind       { return KindLabel }
func (l Label) Entrance() Motion { return l.Enter }
