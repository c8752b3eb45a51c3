package directory

import "smartleave/internal/domain/leave"

// TypeField is a closed set of editable leave-type fields. The unexported
// method keeps the set sealed so every editable field is enumerated here.
type TypeField interface {
	apply(def *leave.LeaveTypeDefinition)
}

type NameEn string

func (f NameEn) apply(def *leave.LeaveTypeDefinition) { def.NameEn = string(f) }

type NameAr string

func (f NameAr) apply(def *leave.LeaveTypeDefinition) { def.NameAr = string(f) }

type Color string

func (f Color) apply(def *leave.LeaveTypeDefinition) { def.Color = string(f) }

type DefaultBalance int

func (f DefaultBalance) apply(def *leave.LeaveTypeDefinition) { def.DefaultBalance = int(f) }
