package behavior

// Kind tags how an overlay reacts to the anchor. It is decided once,
// when the overlay is first seen.
type Kind uint8

const (
	// Generic overlays reserve the anchor's full height and ignore its
	// translation.
	Generic Kind = iota
	// ActionButton overlays follow the anchor on every frame.
	ActionButton
	// Banner overlays follow the anchor on every frame and compensate
	// for the bottom inset.
	Banner
)

func (k Kind) String() string {
	switch k {
	case Generic:
		return "generic"
	case ActionButton:
		return "action-button"
	case Banner:
		return "banner"
	default:
		return "unknown"
	}
}

// Kinded may be implemented by overlays that know their own kind. It is
// consulted by the default classifier.
type Kinded interface {
	OverlayKind() Kind
}

// Classifier decides the Kind of an overlay. Hosts inject one through
// Config.
type Classifier func(Overlay) Kind

// ClassifyKinded is the default Classifier. Overlays implementing Kinded
// report their own kind, all others are Generic.
func ClassifyKinded(o Overlay) Kind {
	if k, ok := o.(Kinded); ok {
		return k.OverlayKind()
	}
	return Generic
}

// Direction of a scroll gesture.
type Direction int

const (
	// Down scrolls back towards the start of the content and reveals the anchor.
	Down Direction = -1
	// None means no vertical movement.
	None Direction = 0
	// Up scrolls further into the content and hides the anchor.
	Up Direction = 1
)

// DirectionOf returns the direction of a vertical scroll delta or
// velocity. Positive values scroll Up.
func DirectionOf(dy float32) Direction {
	switch {
	case dy > 0:
		return Up
	case dy < 0:
		return Down
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "none"
	}
}
