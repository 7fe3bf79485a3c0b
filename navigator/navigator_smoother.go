package navigator

import (
	"math"

	"gonavigate/detour"
)

// inRange reports whether two positions are within a horizontal radius
// and a vertical height band of each other. Both comparisons are
// symmetric in the arguments.
func inRange(a, b detour.Vector, radius, height float32) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dz := b.Z - a.Z
	return dx*dx+dy*dy < radius*radius && float32(math.Abs(float64(dz))) < height
}

// PathSmoother turns a coarse polygon corridor into a dense waypoint
// sequence by repeatedly steering toward the next visible point, moving
// along the mesh surface, and reconciling the corridor with where the
// move actually ended up.
type PathSmoother struct {
	query    detour.NavQuery
	filter   *detour.QueryFilter
	settings *NavigatorSettings
}

func NewPathSmoother(query detour.NavQuery, filter *detour.QueryFilter, settings *NavigatorSettings) *PathSmoother {
	return &PathSmoother{query: query, filter: filter, settings: settings}
}

// steerTarget selects the next point worth steering toward: the first
// straight-path vertex that is an off-mesh connection or not already in
// range of the current position. ok is false when every candidate is in
// range, which means the goal has been reached.
func (s *PathSmoother) steerTarget(startPos, endPos detour.Vector, corridor *Corridor) (target detour.StraightPathPoint, ok bool, err error) {
	points, err := s.query.FindStraightPath(startPos, endPos, corridor.Refs(), s.settings.MaxSteerPoints, 0)
	if err != nil {
		return detour.StraightPathPoint{}, false, err
	}

	for _, p := range points {
		if p.Flags.Has(detour.DT_STRAIGHTPATH_OFFMESH_CONNECTION) ||
			!inRange(p.Point, startPos, s.settings.SteerTargetRadius, s.settings.SteerTargetHeight) {
			p.Point.Z = startPos.Z
			return p, true, nil
		}
	}

	return detour.StraightPathPoint{}, false, nil
}

// Smooth runs the string-pulling loop over the corridor and returns the
// waypoint sequence. The first waypoint is the closest boundary point of
// the start polygon to startPos; the in-range target is the closest
// boundary point of the goal polygon to endPos.
func (s *PathSmoother) Smooth(corridor *Corridor, startPos, endPos detour.Vector) ([]detour.Vector, error) {
	iterPos, err := s.query.ClosestPointOnPolyBoundary(corridor.First(), startPos)
	if err != nil {
		return nil, err
	}
	targetPos, err := s.query.ClosestPointOnPolyBoundary(corridor.Last(), endPos)
	if err != nil {
		return nil, err
	}

	smooth := make([]detour.Vector, 0, s.settings.MaxSmoothPath)
	smooth = append(smooth, iterPos)

	for !corridor.IsEmpty() && len(smooth) < s.settings.MaxSmoothPath {
		steer, ok, err := s.steerTarget(iterPos, targetPos, corridor)
		if err != nil {
			return nil, err
		}
		if !ok {
			// Every candidate is in range: goal reached.
			break
		}

		delta := steer.Point.Sub(iterPos)
		length := delta.Len()

		endOfPath := steer.Flags.Has(detour.DT_STRAIGHTPATH_END)
		offMesh := steer.Flags.Has(detour.DT_STRAIGHTPATH_OFFMESH_CONNECTION)
		if (endOfPath || offMesh) && length < s.settings.SmoothStepSize {
			length = 1.0
		} else {
			length = s.settings.SmoothStepSize / length
		}
		moveTarget := iterPos.Add(delta.Scale(length))

		result, visited, err := s.query.MoveAlongSurface(corridor.First(), iterPos, moveTarget, s.filter, s.settings.MaxMoveVisits)
		if err != nil {
			return nil, err
		}

		if err := corridor.Merge(visited); err != nil {
			return nil, err
		}

		// Best effort: one degraded waypoint beats losing the whole path.
		height, err := s.query.GetPolyHeight(corridor.First(), result)
		if err != nil {
			height = 0.0
		}

		iterPos = detour.Vector{X: result.X, Y: result.Y, Z: height + 0.5}
		smooth = append(smooth, iterPos)
	}

	return smooth, nil
}
