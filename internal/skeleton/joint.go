package skeleton

import (
	"fmt"

	"github.com/banshee-data/kinectstreams/internal/sensor"
)

// JointType enumerates the skeletal landmarks reported by the body tracker.
// The ordinal values match the tracker's wire order.
type JointType int

const (
	SpineBase JointType = iota
	SpineMid
	Neck
	Head
	ShoulderLeft
	ElbowLeft
	WristLeft
	HandLeft
	ShoulderRight
	ElbowRight
	WristRight
	HandRight
	HipLeft
	KneeLeft
	AnkleLeft
	FootLeft
	HipRight
	KneeRight
	AnkleRight
	FootRight
	SpineShoulder
	HandTipLeft
	ThumbLeft
	HandTipRight
	ThumbRight

	// JointCount is the number of joint types.
	JointCount = iota
)

var jointNames = [JointCount]string{
	"SpineBase", "SpineMid", "Neck", "Head",
	"ShoulderLeft", "ElbowLeft", "WristLeft", "HandLeft",
	"ShoulderRight", "ElbowRight", "WristRight", "HandRight",
	"HipLeft", "KneeLeft", "AnkleLeft", "FootLeft",
	"HipRight", "KneeRight", "AnkleRight", "FootRight",
	"SpineShoulder", "HandTipLeft", "ThumbLeft", "HandTipRight", "ThumbRight",
}

// Valid reports whether j is one of the defined joint types.
func (j JointType) Valid() bool { return j >= 0 && j < JointCount }

func (j JointType) String() string {
	if !j.Valid() {
		return fmt.Sprintf("JointType(%d)", int(j))
	}
	return jointNames[j]
}

// TrackingState is the tracker's confidence in a joint position.
type TrackingState int

const (
	NotTracked TrackingState = iota
	Inferred
	Tracked
)

func (s TrackingState) String() string {
	switch s {
	case NotTracked:
		return "NotTracked"
	case Inferred:
		return "Inferred"
	case Tracked:
		return "Tracked"
	default:
		return fmt.Sprintf("TrackingState(%d)", int(s))
	}
}

// IsTrackable reports whether a joint in state s is usable for rendering.
// Inferred and Tracked are treated alike.
func IsTrackable(s TrackingState) bool { return s != NotTracked }

// Joint is one landmark of a tracked body.
type Joint struct {
	Type          JointType
	Position      sensor.CameraSpacePoint
	TrackingState TrackingState
}

// Skeleton holds one joint per JointType, indexed by the type's ordinal.
type Skeleton [JointCount]Joint

// NewSkeleton returns a skeleton with every joint typed and NotTracked.
func NewSkeleton() Skeleton {
	var sk Skeleton
	for i := range sk {
		sk[i].Type = JointType(i)
	}
	return sk
}

// Set stores a joint position and state at its type's slot.
func (sk *Skeleton) Set(j JointType, pos sensor.CameraSpacePoint, state TrackingState) {
	sk[j] = Joint{Type: j, Position: pos, TrackingState: state}
}

// Body is a skeleton tagged with the tracker's body identity.
type Body struct {
	TrackingID uint64
	IsTracked  bool
	Skeleton   Skeleton
}
