package mapper

import (
	"errors"

	"github.com/soar/padbridge/internal/element"
)

// InvertMapper negates the analog or trigger sign of its child's input and
// inverts the sense of button input.
type InvertMapper struct {
	child Mapper
}

func NewInvertMapper(child Mapper) *InvertMapper {
	return &InvertMapper{child: child}
}

func (m *InvertMapper) Child() Mapper { return m.child }

func (m *InvertMapper) ContributeFromAnalog(s *element.State, value int16, src SourceID) {
	if m.child == nil {
		return
	}
	inverted := -int32(value)
	if inverted > int32(element.AnalogMaximum) {
		inverted = int32(element.AnalogMaximum)
	}
	m.child.ContributeFromAnalog(s, int16(inverted), src)
}

func (m *InvertMapper) ContributeFromButton(s *element.State, pressed bool, src SourceID) {
	if m.child == nil {
		return
	}
	m.child.ContributeFromButton(s, !pressed, src)
}

func (m *InvertMapper) ContributeFromTrigger(s *element.State, value uint8, src SourceID) {
	if m.child == nil {
		return
	}
	m.child.ContributeFromTrigger(s, uint8(element.TriggerMaximum)-value, src)
}

func (m *InvertMapper) ContributeNeutral(s *element.State, src SourceID) {
	if m.child == nil {
		return
	}
	m.child.ContributeNeutral(s, src)
}

func (m *InvertMapper) TargetElementCount() int {
	if m.child == nil {
		return 0
	}
	return m.child.TargetElementCount()
}

func (m *InvertMapper) TargetElementAt(index int) (element.Identifier, bool) {
	if m.child == nil {
		return element.Identifier{}, false
	}
	return m.child.TargetElementAt(index)
}

func (m *InvertMapper) Clone() Mapper {
	c := &InvertMapper{}
	if m.child != nil {
		c.child = m.child.Clone()
	}
	return c
}

// SplitMapper routes each input to its positive or negative child by sign or
// threshold. Whichever child does not receive the real contribution is asked
// for a neutral one, so side-effecting children release correctly.
type SplitMapper struct {
	positive Mapper
	negative Mapper
}

func NewSplitMapper(positive, negative Mapper) *SplitMapper {
	return &SplitMapper{positive: positive, negative: negative}
}

func (m *SplitMapper) PositiveChild() Mapper { return m.positive }
func (m *SplitMapper) NegativeChild() Mapper { return m.negative }

func (m *SplitMapper) route(toPositive bool) (active, idle Mapper) {
	if toPositive {
		return m.positive, m.negative
	}
	return m.negative, m.positive
}

func (m *SplitMapper) ContributeFromAnalog(s *element.State, value int16, src SourceID) {
	active, idle := m.route(int32(value) >= element.AnalogNeutral)
	if active != nil {
		active.ContributeFromAnalog(s, value, src)
	}
	if idle != nil {
		idle.ContributeNeutral(s, src)
	}
}

func (m *SplitMapper) ContributeFromButton(s *element.State, pressed bool, src SourceID) {
	active, idle := m.route(pressed)
	if active != nil {
		active.ContributeFromButton(s, pressed, src)
	}
	if idle != nil {
		idle.ContributeNeutral(s, src)
	}
}

func (m *SplitMapper) ContributeFromTrigger(s *element.State, value uint8, src SourceID) {
	active, idle := m.route(triggerIsPressed(value))
	if active != nil {
		active.ContributeFromTrigger(s, value, src)
	}
	if idle != nil {
		idle.ContributeNeutral(s, src)
	}
}

func (m *SplitMapper) ContributeNeutral(s *element.State, src SourceID) {
	if m.positive != nil {
		m.positive.ContributeNeutral(s, src)
	}
	if m.negative != nil {
		m.negative.ContributeNeutral(s, src)
	}
}

func (m *SplitMapper) TargetElementCount() int {
	n := 0
	if m.positive != nil {
		n += m.positive.TargetElementCount()
	}
	if m.negative != nil {
		n += m.negative.TargetElementCount()
	}
	return n
}

func (m *SplitMapper) TargetElementAt(index int) (element.Identifier, bool) {
	if m.positive != nil {
		if index < m.positive.TargetElementCount() {
			return m.positive.TargetElementAt(index)
		}
		index -= m.positive.TargetElementCount()
	}
	if m.negative != nil {
		return m.negative.TargetElementAt(index)
	}
	return element.Identifier{}, false
}

func (m *SplitMapper) Clone() Mapper {
	c := &SplitMapper{}
	if m.positive != nil {
		c.positive = m.positive.Clone()
	}
	if m.negative != nil {
		c.negative = m.negative.Clone()
	}
	return c
}

// MaxCompoundChildren is the fixed capacity of a CompoundMapper.
const MaxCompoundChildren = 8

var errTooManyChildren = errors.New("compound mapper supports at most 8 children")

// CompoundMapper fans one input out to several children.
type CompoundMapper struct {
	children [MaxCompoundChildren]Mapper
}

func NewCompoundMapper(children ...Mapper) (*CompoundMapper, error) {
	if len(children) > MaxCompoundChildren {
		return nil, errTooManyChildren
	}
	m := &CompoundMapper{}
	copy(m.children[:], children)
	return m, nil
}

// Children returns the non-nil children in order.
func (m *CompoundMapper) Children() []Mapper {
	out := make([]Mapper, 0, MaxCompoundChildren)
	for _, c := range m.children {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

func (m *CompoundMapper) ContributeFromAnalog(s *element.State, value int16, src SourceID) {
	for _, c := range m.children {
		if c != nil {
			c.ContributeFromAnalog(s, value, src)
		}
	}
}

func (m *CompoundMapper) ContributeFromButton(s *element.State, pressed bool, src SourceID) {
	for _, c := range m.children {
		if c != nil {
			c.ContributeFromButton(s, pressed, src)
		}
	}
}

func (m *CompoundMapper) ContributeFromTrigger(s *element.State, value uint8, src SourceID) {
	for _, c := range m.children {
		if c != nil {
			c.ContributeFromTrigger(s, value, src)
		}
	}
}

func (m *CompoundMapper) ContributeNeutral(s *element.State, src SourceID) {
	for _, c := range m.children {
		if c != nil {
			c.ContributeNeutral(s, src)
		}
	}
}

func (m *CompoundMapper) TargetElementCount() int {
	n := 0
	for _, c := range m.children {
		if c != nil {
			n += c.TargetElementCount()
		}
	}
	return n
}

func (m *CompoundMapper) TargetElementAt(index int) (element.Identifier, bool) {
	for _, c := range m.children {
		if c == nil {
			continue
		}
		if index < c.TargetElementCount() {
			return c.TargetElementAt(index)
		}
		index -= c.TargetElementCount()
	}
	return element.Identifier{}, false
}

func (m *CompoundMapper) Clone() Mapper {
	c := &CompoundMapper{}
	for i, child := range m.children {
		if child != nil {
			c.children[i] = child.Clone()
		}
	}
	return c
}

// NullMapper contributes nothing anywhere.
type NullMapper struct{}

func NewNullMapper() *NullMapper { return &NullMapper{} }

func (*NullMapper) ContributeFromAnalog(*element.State, int16, SourceID)  {}
func (*NullMapper) ContributeFromButton(*element.State, bool, SourceID)   {}
func (*NullMapper) ContributeFromTrigger(*element.State, uint8, SourceID) {}
func (*NullMapper) ContributeNeutral(*element.State, SourceID)            {}
func (*NullMapper) TargetElementCount() int                               { return 0 }

func (*NullMapper) TargetElementAt(int) (element.Identifier, bool) {
	return element.Identifier{}, false
}

func (*NullMapper) Clone() Mapper { return &NullMapper{} }
