package ui

// layer is a UI surface that can sit above the current view. Keys and Esc
// go to the topmost layer.
type layer int

const (
	layerNone layer = iota
	layerForm
	layerFormSuggestions
	layerFilterSuggestions
	layerConfirmDelete
	layerFilePicker
	layerLightbox
	layerHelp
)

func (l layer) String() string {
	switch l {
	case layerForm:
		return "form"
	case layerFormSuggestions:
		return "formSuggestions"
	case layerFilterSuggestions:
		return "filterSuggestions"
	case layerConfirmDelete:
		return "confirmDelete"
	case layerFilePicker:
		return "filePicker"
	case layerLightbox:
		return "lightbox"
	case layerHelp:
		return "help"
	default:
		return "none"
	}
}

// layerStack orders open layers by when they were opened. A layer appears
// at most once.
type layerStack struct {
	items []layer
}

func (s *layerStack) push(l layer) {
	s.remove(l)
	s.items = append(s.items, l)
}

// remove drops l wherever it sits.
func (s *layerStack) remove(l layer) {
	for i, item := range s.items {
		if item == l {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			return
		}
	}
}

// set pushes l when open and removes it otherwise. An already open layer
// keeps its position.
func (s *layerStack) set(l layer, open bool) {
	switch {
	case open && !s.has(l):
		s.items = append(s.items, l)
	case !open:
		s.remove(l)
	}
}

func (s *layerStack) has(l layer) bool {
	for _, item := range s.items {
		if item == l {
			return true
		}
	}
	return false
}

func (s *layerStack) top() layer {
	if len(s.items) == 0 {
		return layerNone
	}
	return s.items[len(s.items)-1]
}

func (s *layerStack) empty() bool { return len(s.items) == 0 }
