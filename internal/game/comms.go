package game

import "strings"

// MsgPriority picks the HUD color of a comms line.
type MsgPriority uint8

const (
	MsgInfo     MsgPriority = iota // cyan
	MsgWarning                     // yellow
	MsgCritical                    // red
	MsgReward                      // green
)

// CommsLine is one line in the comms log.
type CommsLine struct {
	Text     string
	Priority MsgPriority
	Frame    uint64 // session frame it was logged on
}

// commsWidth is the widest line the HUD comms panel fits.
const commsWidth = 48

// CommsLog keeps the most recent mission messages.
type CommsLog struct {
	Lines   []CommsLine
	maxSize int
}

// NewCommsLog creates a log holding at most maxSize lines.
func NewCommsLog(maxSize int) *CommsLog {
	return &CommsLog{
		Lines:   make([]CommsLine, 0, maxSize),
		maxSize: maxSize,
	}
}

// Add wraps text to the panel width and appends it, dropping the oldest lines
// once the log is full.
func (l *CommsLog) Add(frame uint64, text string, priority MsgPriority) {
	for _, line := range wrapText(text, commsWidth) {
		l.Lines = append(l.Lines, CommsLine{Text: line, Priority: priority, Frame: frame})
	}
	if over := len(l.Lines) - l.maxSize; over > 0 {
		l.Lines = append(l.Lines[:0], l.Lines[over:]...)
	}
}

// Recent returns up to n of the newest lines, oldest first.
func (l *CommsLog) Recent(n int) []CommsLine {
	n = min(n, len(l.Lines))
	return l.Lines[len(l.Lines)-n:]
}

func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
