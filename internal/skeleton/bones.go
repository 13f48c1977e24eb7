package skeleton

// Bone connects two joints with a rendered segment.
type Bone struct {
	From, To JointType
}

// Bones is the anatomical connectivity drawn for every body, torso first,
// then arms, then legs.
var Bones = [...]Bone{
	{Head, Neck},
	{Neck, SpineShoulder},
	{SpineShoulder, ShoulderLeft},
	{SpineShoulder, ShoulderRight},
	{SpineShoulder, SpineMid},
	{ShoulderLeft, ElbowLeft},
	{ShoulderRight, ElbowRight},
	{ElbowLeft, WristLeft},
	{ElbowRight, WristRight},
	{WristLeft, HandLeft},
	{WristRight, HandRight},
	{HandLeft, HandTipLeft},
	{HandRight, HandTipRight},
	{HandTipLeft, ThumbLeft},
	{HandTipRight, ThumbRight},
	{SpineMid, SpineBase},
	{SpineBase, HipLeft},
	{SpineBase, HipRight},
	{HipLeft, KneeLeft},
	{HipRight, KneeRight},
	{KneeLeft, AnkleLeft},
	{KneeRight, AnkleRight},
	{AnkleLeft, FootLeft},
	{AnkleRight, FootRight},
}
