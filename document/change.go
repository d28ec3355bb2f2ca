package document

import "asmpad/textcore"

// ChangeEvent describes the document after one observable change.
//
// The full text is carried as the payload; subscribers diff if they need to.
type ChangeEvent struct {
	Version uint64
	Cursor  textcore.Cursor
	Text    string
}

// Subscribe registers fn for every observable change. Subscribers run
// synchronously on the mutating goroutine, in registration order.
func (d *Document) Subscribe(fn func(ChangeEvent)) {
	if fn == nil {
		return
	}
	d.subs = append(d.subs, fn)
}

func (d *Document) notify() {
	if len(d.subs) == 0 {
		return
	}
	ev := ChangeEvent{
		Version: d.version,
		Cursor:  d.Cursor(),
		Text:    d.text,
	}
	for _, fn := range d.subs {
		fn(ev)
	}
}
