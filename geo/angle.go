package geo

import (
	"fmt"
	"math"
)

// AltitudeAngle returns the elevation angle in degrees of a target of the
// given height seen from an observer at observerHeight, separated by
// distance meters of horizontal ground.
//
// Earth curvature and refraction are ignored, so the result is only a
// threshold approximation for targets well inside the horizon.
func AltitudeAngle(targetHeight, distance, observerHeight float64) (float64, error) {
	if math.IsNaN(distance) || distance <= 0 {
		return 0, fmt.Errorf("%w: %f m", ErrDegenerateDistance, distance)
	}

	adjusted := targetHeight - observerHeight
	return degrees(math.Atan(adjusted / distance)), nil
}
