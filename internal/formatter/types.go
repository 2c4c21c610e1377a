package formatter

// Kind classifies a collected file.
type Kind int

const (
	// Text files are embedded in a fenced block.
	Text Kind = iota
	// Binary files are reported by size only.
	Binary
	// Unreadable files could not be read or decoded.
	Unreadable
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Binary:
		return "binary"
	case Unreadable:
		return "unreadable"
	default:
		return "unknown"
	}
}

// FileRecord holds the classification result for one collected file.
type FileRecord struct {
	Path    string // Path relative to the workspace root, slash separated
	Kind    Kind
	Content string // Set for Text only
	Size    int64  // Set for Binary only
}

// Summary holds aggregated counts over a set of records.
type Summary struct {
	TextFiles       int
	BinaryFiles     int
	UnreadableFiles int
	TextBytes       int64
	BinaryBytes     int64
}

// TotalFiles returns the number of records the summary was built from.
func (s Summary) TotalFiles() int {
	return s.TextFiles + s.BinaryFiles + s.UnreadableFiles
}
