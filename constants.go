package corewave

// Marker indices 0..253 are user markers; 255 is reserved for the cursor.
// Index 254 is kept free as a boundary slot so MaxUserMarkerIndex and
// CursorMarkerIndex are never adjacent off-by-one typos of each other.
const (
	// CursorMarkerIndex is the reserved marker id for the cursor.
	CursorMarkerIndex uint8 = 255
	// MaxUserMarkerIndex is the highest index available to a user marker.
	MaxUserMarkerIndex uint8 = 253
	// MaxUserMarkers is the maximum number of user markers (indices 0..253).
	MaxUserMarkers = int(MaxUserMarkerIndex) + 1
)

// Movement key bindings.
const (
	// ScrollEventsPerPage is how many PER_SCROLL_EVENT units a PgUp/PgDn
	// page-move covers.
	ScrollEventsPerPage = 20
	// PerScrollEvent is the pixel-equivalent unit one scroll-wheel tick
	// moves the viewport by.
	PerScrollEvent = 50
)

// Mouse-gesture thresholds for a middle-drag gesture recognizer: a real
// implementation would read these from a user-configurable gesture
// config rather than a literal constant. The GUI host owns the actual
// config; these are the recorded defaults.
const (
	// GestureDeadzonePixels is the minimum drag distance (squared, in
	// pixels) before a middle-button drag is classified as a gesture
	// rather than noise.
	GestureDeadzonePixels = 16.0
	// PinchAngleEpsilonRadians is the minimum rotation between frames
	// before a two-finger gesture contributes rotation instead of being
	// treated as a pure pinch-zoom.
	PinchAngleEpsilonRadians = 0.02
)
