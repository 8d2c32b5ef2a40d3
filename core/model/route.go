package model

// RouteType is the routing strategy a trip was planned with.
type RouteType int

const (
	RouteFast RouteType = iota
	RouteEco
	// RouteOther covers any strategy name that is neither "fast" nor "eco".
	RouteOther
)

// ParseRouteType maps a wire name to a RouteType using exact comparison.
func ParseRouteType(s string) RouteType {
	switch s {
	case "fast":
		return RouteFast
	case "eco":
		return RouteEco
	default:
		return RouteOther
	}
}

// String returns a human-readable representation of the route type.
func (t RouteType) String() string {
	switch t {
	case RouteFast:
		return "fast"
	case RouteEco:
		return "eco"
	default:
		return "other"
	}
}

// Code is the numeric value fed to the model: 0 for fast, 1 for everything else.
func (t RouteType) Code() float64 {
	if t == RouteFast {
		return 0
	}
	return 1
}
