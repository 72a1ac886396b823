package valueobjects

import "fmt"

type Plan string

const (
	PlanBasic      Plan = "basic"
	PlanPro        Plan = "pro"
	PlanEnterprise Plan = "enterprise"
)

var validPlans = map[Plan]bool{
	PlanBasic:      true,
	PlanPro:        true,
	PlanEnterprise: true,
}

func NewPlan(value string) (Plan, error) {
	p := Plan(value)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid plan: %s", value)
	}
	return p, nil
}

func (p Plan) String() string {
	return string(p)
}

func (p Plan) IsValid() bool {
	return validPlans[p]
}
