// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package valx

import (
	"code.hybscloud.com/kont"
)

// ToEither converts a two-alternative variant to [kont.Either], the
// ecosystem's native 2-ary sum: index 0 maps to Left, index 1 to Right.
// A destroyed variant resolves to alternative 0, as in visitation.
func ToEither[L, R any](v *Variant2[L, R]) kont.Either[L, R] {
	if v.tag == 1 {
		return kont.Right[L, R](v.a1)
	}
	return kont.Left[L, R](v.a0)
}

// FromEither converts a [kont.Either] to a two-alternative variant:
// Left maps to index 0, Right to index 1.
func FromEither[L, R any](e kont.Either[L, R]) Variant2[L, R] {
	if l, ok := e.GetLeft(); ok {
		return New2At0[L, R](l)
	}
	r, _ := e.GetRight()
	return New2At1[L](r)
}
