package tabview

// epsilonSize stands in for a zero viewport dimension so the derived position
// below never divides by zero. It is replaced by the first real measurement.
const epsilonSize = 1e-3

// PositionModel holds the three cells the continuous focus position is
// derived from. Pan is the transient displacement written by the pager while
// a transition is in flight, offset is the committed displacement for the
// active index (offset == -index*width at rest), and size is the viewport.
//
// Position is a standing relationship over the cells, recomputed on every
// read. The cells are only ever touched from the bubbletea update loop, so
// there is no locking here.
type PositionModel struct {
	pan    float64
	offset float64
	sizeX  float64
	sizeY  float64
}

func newPositionModel(initialIndex int, estimate Layout) *PositionModel {
	pos := &PositionModel{offset: -float64(initialIndex) * float64(estimate.Width)}
	pos.setSize(float64(estimate.Width), float64(estimate.Height))

	return pos
}

// Position is the continuous focus position in index units: exactly i when
// settled on index i, fractional while a transition is in progress.
func (p *PositionModel) Position() float64 {
	return -1 * (p.pan + p.offset) / p.sizeX
}

func (p *PositionModel) Pan() float64 { return p.pan }

func (p *PositionModel) SetPan(v float64) { p.pan = v }

func (p *PositionModel) Offset() float64 { return p.offset }

func (p *PositionModel) SetOffset(v float64) { p.offset = v }

func (p *PositionModel) Size() (float64, float64) { return p.sizeX, p.sizeY }

func (p *PositionModel) setSize(width, height float64) {
	if width == 0 {
		width = epsilonSize
	}
	if height == 0 {
		height = epsilonSize
	}

	p.sizeX = width
	p.sizeY = height
}
