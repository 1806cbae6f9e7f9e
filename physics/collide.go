package physics

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/phil-mansfield/gravbox/particle"
)

// ImpulseModel selects the restitution law used when two approaching
// particles collide.
type ImpulseModel uint8

const (
	// ReferenceImpulse uses J = e v_n 2 m_j / (m_i + m_j). Particle i loses
	// J n and particle j gains J (m_i / m_j) n.
	ReferenceImpulse ImpulseModel = iota
	// NewtonImpulse uses J = (1 + e) v_n m_j / (m_i + m_j) with the same
	// update rule. It agrees with ReferenceImpulse when e = 1.
	NewtonImpulse
	EndImpulseModel
)

var impulseModelNames = [EndImpulseModel]string{"Reference", "Newton"}

func (m ImpulseModel) String() string {
	if m >= EndImpulseModel {
		return fmt.Sprintf("ImpulseModel(%d)", uint8(m))
	}
	return impulseModelNames[m]
}

// ParseImpulseModel converts a case-insensitive model name into an
// ImpulseModel. The empty string is parsed as ReferenceImpulse.
func ParseImpulseModel(name string) (ImpulseModel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ReferenceImpulse, nil
	}

	var m ImpulseModel
	for m = 0; m < EndImpulseModel; m++ {
		if strings.EqualFold(m.String(), name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf(
		"ImpulseModel must be one of [Reference | Newton], but is '%s'.", name,
	)
}

// Collider separates overlapping particles and applies a collision impulse
// to pairs which are approaching each other.
type Collider struct {
	Radius, Restitution float64
	Model               ImpulseModel
}

// Resolve visits every pair (i, j > i) in index order and resolves each one
// which overlaps. Pairs are resolved one after another, so a later pair sees
// the corrections made to earlier pairs. Coincident centers are skipped.
//
// contacts is the number of overlapping pairs and impulses is the number of
// those which were approaching and had their velocities changed.
func (c *Collider) Resolve(ps *particle.Set) (contacts, impulses int) {
	for i := range ps.Xs {
		for j := i + 1; j < len(ps.Xs); j++ {
			touched, kicked := c.ResolvePair(ps, i, j)
			if touched {
				contacts++
			}
			if kicked {
				impulses++
			}
		}
	}
	return contacts, impulses
}

// ResolvePair resolves a single pair. touched reports whether the pair
// overlapped and kicked reports whether an impulse was applied.
func (c *Collider) ResolvePair(ps *particle.Set, i, j int) (touched, kicked bool) {
	minDist := 2 * c.Radius

	dx := r2.Sub(ps.Xs[j], ps.Xs[i])
	d := math.Sqrt(r2.Norm2(dx))
	if d <= 0 || d >= minDist {
		return false, false
	}

	n := r2.Scale(1/d, dx)

	sep := r2.Scale((minDist-d)/2, n)
	ps.Xs[i] = r2.Sub(ps.Xs[i], sep)
	ps.Xs[j] = r2.Add(ps.Xs[j], sep)

	vn := r2.Dot(r2.Sub(ps.Vs[i], ps.Vs[j]), n)
	if vn <= 0 {
		return true, false
	}

	mi, mj := ps.Ms[i], ps.Ms[j]
	J := c.impulse(vn, mi, mj)

	ps.Vs[i] = r2.Sub(ps.Vs[i], r2.Scale(J, n))
	ps.Vs[j] = r2.Add(ps.Vs[j], r2.Scale(J*(mi/mj), n))
	return true, true
}

func (c *Collider) impulse(vn, mi, mj float64) float64 {
	switch c.Model {
	case NewtonImpulse:
		return (1 + c.Restitution) * vn * mj / (mi + mj)
	default:
		return 2 * vn * mj / (mi + mj) * c.Restitution
	}
}
