// Package skeleton models tracked bodies and projects their joints from
// camera space onto a display plane.
//
// A Skeleton is a fixed-size array indexed by JointType, so every joint type
// is always present. Bones is a static table of the anatomical connections
// that are drawn between joints.
package skeleton
