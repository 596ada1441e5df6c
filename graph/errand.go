package graph

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Leg is one stage of an errand.
type Leg struct {
	From     int
	To       int
	Distance int64
	Path     []int
}

// Errand is the result of ShortestErrand.
type Errand struct {
	// Distance is the sum of the leg distances, or Infinity when some leg
	// could not be completed.
	Distance int64

	// Path is the full route home → ice → ice-cream → destination with the
	// shared endpoints of consecutive legs listed once. Nil when unreachable.
	Path []int

	// Legs holds the legs that were computed, in order. An unreachable errand
	// stops at the first leg whose Distance is Infinity.
	Legs []Leg
}

// Reachable reports whether the whole errand could be completed.
func (e *Errand) Reachable() bool { return e.Distance != Infinity }

// ShortestErrand finds a route from home to destination that first visits one
// of the ice waypoints and then one of the iceCream waypoints.
//
// The route is built greedily over the spanning forest (which is built first
// if needed):
//  1. from home, go to the nearest ice waypoint;
//  2. from there, go to the nearest ice-cream waypoint;
//  3. from there, go to destination.
//
// "Nearest" takes the first minimum in list order. Each stage ignores the
// stages after it, so the total can exceed the best possible route.
//
// Errors:
//   - ErrNoWaypoints      if ice or iceCream is empty.
//   - ErrVertexOutOfRange if home, destination or a waypoint is out of range.
//   - ErrWeightOverflow   if the three legs together reach Infinity. Each leg
//     is below Infinity on its own, but a route may cross an edge more than
//     once.
//
// When a leg has no reachable candidate the returned Errand has Distance ==
// Infinity and a nil Path; this is not an error.
func (g *Graph) ShortestErrand(home, destination int, ice, iceCream []int) (*Errand, error) {
	if err := g.checkVertex(home); err != nil {
		return nil, fmt.Errorf("home: %w", err)
	}
	if err := g.checkVertex(destination); err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}
	if err := g.checkWaypoints("ice", ice); err != nil {
		return nil, err
	}
	if err := g.checkWaypoints("ice-cream", iceCream); err != nil {
		return nil, err
	}

	g.forestList()

	res := &Errand{Distance: Infinity}
	from := home
	for _, candidates := range [][]int{ice, iceCream, {destination}} {
		leg, err := g.nearestLeg(from, candidates)
		if err != nil {
			return nil, err
		}
		res.Legs = append(res.Legs, leg)
		if leg.Distance == Infinity {
			g.log.WithFields(logrus.Fields{"from": leg.From, "legs": len(res.Legs)}).Debug("errand unreachable")
			return res, nil
		}
		from = leg.To
	}

	var total int64
	path := []int{home}
	for _, leg := range res.Legs {
		if leg.Distance >= Infinity-total {
			return nil, fmt.Errorf("%w: errand %d → %d", ErrWeightOverflow, home, destination)
		}
		total += leg.Distance
		path = append(path, leg.Path[1:]...)
	}
	res.Distance = total
	res.Path = path
	g.log.WithFields(logrus.Fields{
		"home":        home,
		"destination": destination,
		"distance":    total,
	}).Debug("errand planned")

	return res, nil
}

// nearestLeg runs ShortestPaths from `from` and picks the first candidate
// with the smallest distance.
func (g *Graph) nearestLeg(from int, candidates []int) (Leg, error) {
	paths, err := g.ShortestPaths(from)
	if err != nil {
		return Leg{}, err
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if paths.Dist[c] < paths.Dist[best] {
			best = c
		}
	}

	return Leg{
		From:     from,
		To:       best,
		Distance: paths.Dist[best],
		Path:     paths.Route[best],
	}, nil
}

func (g *Graph) checkWaypoints(kind string, ws []int) error {
	if len(ws) == 0 {
		return fmt.Errorf("%w: %s", ErrNoWaypoints, kind)
	}
	for _, w := range ws {
		if err := g.checkVertex(w); err != nil {
			return fmt.Errorf("%s waypoint: %w", kind, err)
		}
	}

	return nil
}
