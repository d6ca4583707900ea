package gpio

// Alternate-function grants. A pin can only be switched to an alternate
// function by passing the grant for that pin and function, and a grant
// only exists where the device has the function. Grants restricted to one
// direction satisfy only the matching constraint, so for example P2_0Alt2
// is accepted by OutputAlternate2 but not by InputAlternate2.
//
// The constraints admit only the package's zero-size grant types. An
// interface value, and so nil, never satisfies them.

// Alternate1Input is satisfied by the grant for alternate function 1 of
// pin N of port P while the pin is an input.
type Alternate1Input[P Port, N Pin] interface {
	~struct{}
	alt1Input(P, N)
}

// Alternate1Output is satisfied by the grant for alternate function 1 of
// pin N of port P while the pin is an output.
type Alternate1Output[P Port, N Pin] interface {
	~struct{}
	alt1Output(P, N)
}

// Alternate2Input is satisfied by a grant for alternate function 2 of an
// input.
type Alternate2Input[P Port, N Pin] interface {
	~struct{}
	alt2Input(P, N)
}

// Alternate2Output is satisfied by a grant for alternate function 2 of an
// output.
type Alternate2Output[P Port, N Pin] interface {
	~struct{}
	alt2Output(P, N)
}

// Alternate3Input is satisfied by a grant for alternate function 3 of an
// input.
type Alternate3Input[P Port, N Pin] interface {
	~struct{}
	alt3Input(P, N)
}

// Alternate3Output is satisfied by a grant for alternate function 3 of an
// output.
type Alternate3Output[P Port, N Pin] interface {
	~struct{}
	alt3Output(P, N)
}

type alt1[P Port, N Pin] struct{}

func (alt1[P, N]) alt1Input(P, N)  {}
func (alt1[P, N]) alt1Output(P, N) {}

type alt1In[P Port, N Pin] struct{}

func (alt1In[P, N]) alt1Input(P, N) {}

type alt2[P Port, N Pin] struct{}

func (alt2[P, N]) alt2Input(P, N)  {}
func (alt2[P, N]) alt2Output(P, N) {}

type alt2In[P Port, N Pin] struct{}

func (alt2In[P, N]) alt2Input(P, N) {}

type alt2Out[P Port, N Pin] struct{}

func (alt2Out[P, N]) alt2Output(P, N) {}

type alt3[P Port, N Pin] struct{}

func (alt3[P, N]) alt3Input(P, N)  {}
func (alt3[P, N]) alt3Output(P, N) {}

// Port 1.
var (
	P1_0Alt1 = alt1[Port1, Pin0]{}
	P1_1Alt1 = alt1[Port1, Pin1]{}
	P1_2Alt1 = alt1[Port1, Pin2]{}
	P1_3Alt1 = alt1[Port1, Pin3]{}
	P1_4Alt1 = alt1[Port1, Pin4]{}
	P1_5Alt1 = alt1[Port1, Pin5]{}
	P1_6Alt1 = alt1[Port1, Pin6]{}
	P1_7Alt1 = alt1[Port1, Pin7]{}

	P1_0Alt2 = alt2[Port1, Pin0]{}
	P1_1Alt2 = alt2[Port1, Pin1]{}
	P1_2Alt2 = alt2In[Port1, Pin2]{}
	P1_6Alt2 = alt2[Port1, Pin6]{}
	P1_7Alt2 = alt2[Port1, Pin7]{}

	P1_0Alt3 = alt3[Port1, Pin0]{}
	P1_1Alt3 = alt3[Port1, Pin1]{}
	P1_2Alt3 = alt3[Port1, Pin2]{}
	P1_3Alt3 = alt3[Port1, Pin3]{}
	P1_4Alt3 = alt3[Port1, Pin4]{}
	P1_5Alt3 = alt3[Port1, Pin5]{}
	P1_6Alt3 = alt3[Port1, Pin6]{}
	P1_7Alt3 = alt3[Port1, Pin7]{}
)

// Port 2.
var (
	P2_0Alt1 = alt1[Port2, Pin0]{}
	P2_1Alt1 = alt1[Port2, Pin1]{}
	P2_2Alt1 = alt1In[Port2, Pin2]{}
	P2_3Alt1 = alt1[Port2, Pin3]{}
	P2_6Alt1 = alt1[Port2, Pin6]{}
	P2_7Alt1 = alt1[Port2, Pin7]{}

	P2_0Alt2 = alt2Out[Port2, Pin0]{}
	P2_1Alt2 = alt2Out[Port2, Pin1]{}
	P2_6Alt2 = alt2[Port2, Pin6]{}
	P2_7Alt2 = alt2[Port2, Pin7]{}

	P2_4Alt3 = alt3[Port2, Pin4]{}
	P2_5Alt3 = alt3[Port2, Pin5]{}
)

// Port 3.
var (
	P3_0Alt1 = alt1[Port3, Pin0]{}
	P3_4Alt1 = alt1[Port3, Pin4]{}

	P3_1Alt3 = alt3[Port3, Pin1]{}
	P3_2Alt3 = alt3[Port3, Pin2]{}
	P3_3Alt3 = alt3[Port3, Pin3]{}
	P3_5Alt3 = alt3[Port3, Pin5]{}
	P3_6Alt3 = alt3[Port3, Pin6]{}
	P3_7Alt3 = alt3[Port3, Pin7]{}
)

// Port 4.
var (
	P4_0Alt1 = alt1[Port4, Pin0]{}
	P4_1Alt1 = alt1[Port4, Pin1]{}
	P4_2Alt1 = alt1[Port4, Pin2]{}
	P4_3Alt1 = alt1[Port4, Pin3]{}
	P4_4Alt1 = alt1[Port4, Pin4]{}
	P4_5Alt1 = alt1[Port4, Pin5]{}
	P4_6Alt1 = alt1[Port4, Pin6]{}
	P4_7Alt1 = alt1[Port4, Pin7]{}

	P4_0Alt2 = alt2[Port4, Pin0]{}
	P4_2Alt2 = alt2[Port4, Pin2]{}
	P4_3Alt2 = alt2[Port4, Pin3]{}
)

// Port 5.
var (
	P5_0Alt1 = alt1[Port5, Pin0]{}
	P5_1Alt1 = alt1[Port5, Pin1]{}
	P5_2Alt1 = alt1[Port5, Pin2]{}
	P5_3Alt1 = alt1[Port5, Pin3]{}

	P5_0Alt2 = alt2[Port5, Pin0]{}
	P5_1Alt2 = alt2[Port5, Pin1]{}

	P5_0Alt3 = alt3[Port5, Pin0]{}
	P5_1Alt3 = alt3[Port5, Pin1]{}
	P5_2Alt3 = alt3[Port5, Pin2]{}
	P5_3Alt3 = alt3[Port5, Pin3]{}
)

// Port 6.
var (
	P6_0Alt1 = alt1[Port6, Pin0]{}
	P6_1Alt1 = alt1[Port6, Pin1]{}
	P6_2Alt1 = alt1[Port6, Pin2]{}
	P6_3Alt1 = alt1[Port6, Pin3]{}
	P6_4Alt1 = alt1[Port6, Pin4]{}
	P6_5Alt1 = alt1[Port6, Pin5]{}
	P6_6Alt1 = alt1[Port6, Pin6]{}
	P6_7Alt1 = alt1[Port6, Pin7]{}
)
