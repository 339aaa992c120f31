package domain

// Field identifies one mutable product attribute.
type Field uint8

// Mutable fields. Everything else on a product is fixed at creation.
const (
	FieldDescription Field = 1 << iota
	FieldDiscount
	FieldStatus
)

var fieldNames = []struct {
	field Field
	name  string
}{
	{FieldDescription, "description"},
	{FieldDiscount, "discount"},
	{FieldStatus, "status"},
}

func (f Field) String() string {
	for _, fn := range fieldNames {
		if fn.field == f {
			return fn.name
		}
	}
	return "unknown"
}

// ChangeTracker records which mutable fields were modified since the
// aggregate was loaded, so the repository writes only those columns.
type ChangeTracker struct {
	dirty Field
}

func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{}
}

func (ct *ChangeTracker) MarkDirty(f Field) { ct.dirty |= f }

func (ct *ChangeTracker) Dirty(f Field) bool { return ct.dirty&f != 0 }

func (ct *ChangeTracker) HasChanges() bool { return ct.dirty != 0 }

// DirtyFields returns the names of the dirty fields in declaration order.
func (ct *ChangeTracker) DirtyFields() []string {
	names := make([]string, 0, len(fieldNames))
	for _, fn := range fieldNames {
		if ct.Dirty(fn.field) {
			names = append(names, fn.name)
		}
	}
	return names
}
