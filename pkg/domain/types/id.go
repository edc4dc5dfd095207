package types

import "github.com/google/uuid"

type (
	FindingID string
	PassID    string
)

func NewFindingID() FindingID {
	return FindingID(uuid.NewString())
}

func NewPassID() PassID {
	return PassID(uuid.NewString())
}
