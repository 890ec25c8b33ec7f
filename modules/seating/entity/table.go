package entity

// TableShape describes the drawn shape of a table
type TableShape string

const (
	TableRound       TableShape = "round"
	TableSquare      TableShape = "square"
	TableRectangular TableShape = "rectangular"
)

// GenderAffinity restricts which guest partition may sit at a table when the
// event seats genders separately. Empty means no restriction.
type GenderAffinity string

const (
	AffinityNone   GenderAffinity = ""
	AffinityMale   GenderAffinity = "male"
	AffinityFemale GenderAffinity = "female"
)

// Capacity bounds for manually created tables
const (
	MinTableCapacity = 4
	MaxTableCapacity = 30
)

// Table represents a seating table. Number is the sequential display number;
// Name is either derived from the dominant seated group or a manual override.
// Position and size fields are presentation-only and round-tripped untouched.
type Table struct {
	ID       string         `json:"id"`
	Number   int            `json:"number"`
	Name     string         `json:"name"`
	Shape    TableShape     `json:"shape"`
	Capacity int            `json:"capacity"`
	PosX     float64        `json:"pos_x"`
	PosY     float64        `json:"pos_y"`
	Width    float64        `json:"width"`
	Height   float64        `json:"height"`
	Affinity GenderAffinity `json:"affinity,omitempty"`
}

// Accepts reports whether the table's gender affinity allows the partition
func (t *Table) Accepts(p Partition) bool {
	switch t.Affinity {
	case AffinityMale:
		return p == PartitionMale
	case AffinityFemale:
		return p == PartitionFemale
	default:
		return true
	}
}
