package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/report_intake/internal/models"
)

var fieldLabels = map[string]string{
	"type":              "Report type",
	"firstName":         "First name",
	"lastName":          "Last name",
	"relationship":      "Relationship",
	"dateOfBirth":       "Date of birth",
	"age":               "Age",
	"lastSeenDate":      "Last seen date",
	"lastKnownLocation": "Last known location",
	"mostRecentPhoto":   "Most recent photo",
	"streetAddress":     "Street address",
	"barangay":          "Barangay",
	"city":              "City",
	"zipCode":           "Zip code",
}

var (
	reportTypes = []models.ReportType{
		models.ReportTypeMissing,
		models.ReportTypeAbsent,
		models.ReportTypeAbducted,
		models.ReportTypeKidnapped,
		models.ReportTypeHitAndRun,
	}
	relationships = []models.Relationship{
		models.RelationshipParent,
		models.RelationshipChild,
		models.RelationshipSibling,
		models.RelationshipSpouse,
		models.RelationshipRelative,
		models.RelationshipFriend,
		models.RelationshipColleague,
		models.RelationshipNeighbor,
		models.RelationshipGuardian,
		models.RelationshipOther,
	}
)

// Engine проверяет обязательные поля каждого шага. Не хранит состояния.
type Engine struct {
	validate *validator.Validate
}

// NewEngine создает Engine с зарегистрированными правилами для перечислений
func NewEngine() *Engine {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("relationship", func(fl validator.FieldLevel) bool {
		value := models.Relationship(fl.Field().String())
		for _, r := range relationships {
			if r == value {
				return true
			}
		}
		return false
	})
	_ = v.RegisterValidation("reporttype", func(fl validator.FieldLevel) bool {
		value := models.ReportType(fl.Field().String())
		for _, t := range reportTypes {
			if t == value {
				return true
			}
		}
		return false
	})
	return &Engine{validate: v}
}

// Validate возвращает карту поле -> сообщение для шага. Пустая карта означает, что шаг заполнен.
func (e *Engine) Validate(step models.Step, draft *models.ReportDraft) map[string]string {
	errs := make(map[string]string)
	if draft == nil {
		errs["draft"] = "Draft is missing"
		return errs
	}

	switch step {
	case models.StepPersonDetails:
		e.collect(errs, e.validate.Struct(draft.PersonInvolved))
		if draft.Type != "" {
			if err := e.validate.Var(string(draft.Type), "reporttype"); err != nil {
				errs["type"] = message("type", "reporttype", "")
			}
		}
	case models.StepLocation:
		// координаты могут оставаться пустыми до поиска участка
		e.collect(errs, e.validate.Struct(draft.Location.Address))
	case models.StepPoliceStation, models.StepPreview:
		// автоназначение - допустимое конечное состояние
	default:
		errs["step"] = fmt.Sprintf("Unknown step %d", step)
	}
	return errs
}

// Check оборачивает результат Validate в ValidationError
func (e *Engine) Check(step models.Step, draft *models.ReportDraft) error {
	fields := e.Validate(step, draft)
	if len(fields) == 0 {
		return nil
	}
	return &models.ValidationError{Step: step.String(), Fields: fields}
}

func (e *Engine) collect(errs map[string]string, err error) {
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["_"] = err.Error()
		return
	}
	for _, fe := range verrs {
		if _, exists := errs[fe.Field()]; exists {
			continue
		}
		errs[fe.Field()] = message(fe.Field(), fe.Tag(), fe.Param())
	}
}

func message(field, tag, param string) string {
	label, ok := fieldLabels[field]
	if !ok {
		label = field
	}
	switch tag {
	case "required":
		return label + " is required"
	case "numeric":
		return label + " must contain digits only"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", label, param)
	case "relationship":
		return label + " must be one of the listed relationships"
	case "reporttype":
		return label + " must be one of Missing, Absent, Abducted, Kidnapped, Hit-and-Run"
	}
	return label + " is invalid"
}
