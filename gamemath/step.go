package gamemath

// Step advances an actor one frame in tank or bird's-eye mode. A bird's-eye
// actor with no net direction keeps its heading rather than snapping to 0,
// so an idle turtle keeps facing where it last walked.
func Step(pose Pose, keys KeyState, birdsEye bool, dt float64) Pose {
	if !birdsEye {
		return CalculateMovement(pose, MovementFromKeys(keys), dt)
	}

	next := CalculateBirdsEyeMovement(pose, keys, dt)
	if !IsMoving(keys) {
		next.Rotation = pose.Rotation
	}
	return next
}
