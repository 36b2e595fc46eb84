package models

// Step - шаг мастера заявления
type Step int

const (
	StepPersonDetails Step = iota
	StepLocation
	StepPoliceStation
	StepPreview
)

var stepNames = map[Step]string{
	StepPersonDetails: "person_details",
	StepLocation:      "location",
	StepPoliceStation: "police_station",
	StepPreview:       "preview",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// Valid сообщает, является ли шаг одним из известных
func (s Step) Valid() bool {
	_, ok := stepNames[s]
	return ok
}

// ParseStep разбирает имя шага
func ParseStep(name string) (Step, bool) {
	for step, n := range stepNames {
		if n == name {
			return step, true
		}
	}
	return 0, false
}
