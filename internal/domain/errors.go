package domain

import "errors"

// Conflicts reported by repositories when a unique constraint rejects a write.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrAffiliateExists    = errors.New("affiliate account already exists")
	ErrAffiliateCodeTaken = errors.New("affiliate code already taken")
	ErrConversionExists   = errors.New("conversion already recorded")
	ErrMemberExists       = errors.New("team member already exists")
)
