package salary

// Allowance and deduction rates applied to the basic amount. These mirror
// the slip layout the frontend presents: HRA on top, provident fund taken
// off.
const (
	HRARate = 0.40
	PFRate  = 0.12
)

type Breakdown struct {
	Basic float64
	HRA   float64
	PF    float64
	Net   float64
}

// Compute derives the full slip breakdown from the basic amount.
func Compute(basic float64) Breakdown {
	hra := basic * HRARate
	pf := basic * PFRate
	return Breakdown{
		Basic: basic,
		HRA:   hra,
		PF:    pf,
		Net:   basic + hra - pf,
	}
}
