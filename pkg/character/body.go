package character

// BodyPart names one of the six tracked body locations.
type BodyPart string

const (
	BodyHead     BodyPart = "head"
	BodyTorso    BodyPart = "torso"
	BodyLeftArm  BodyPart = "leftArm"
	BodyRightArm BodyPart = "rightArm"
	BodyLeftLeg  BodyPart = "leftLeg"
	BodyRightLeg BodyPart = "rightLeg"
)

// BodyPartStatus is the condition of a body part. The narrator has full
// authority over transitions; any status may overwrite any other.
type BodyPartStatus string

const (
	BodyHealthy  BodyPartStatus = "Healthy"
	BodyInjured  BodyPartStatus = "Injured"
	BodyCritical BodyPartStatus = "Critical"
	BodySevered  BodyPartStatus = "Severed"
)

// NewBodyParts returns a full body map with every part healthy.
func NewBodyParts() map[BodyPart]BodyPartStatus {
	return map[BodyPart]BodyPartStatus{
		BodyHead:     BodyHealthy,
		BodyTorso:    BodyHealthy,
		BodyLeftArm:  BodyHealthy,
		BodyRightArm: BodyHealthy,
		BodyLeftLeg:  BodyHealthy,
		BodyRightLeg: BodyHealthy,
	}
}
