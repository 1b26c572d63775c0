package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"barista/internal/domain"
)

func validForm() domain.CoffeeForm {
	return domain.CoffeeForm{Name: "Yirgacheffe", Origin: "Ethiopia"}
}

func TestValidateCoffee_Scenario(t *testing.T) {
	got, err := domain.ValidateCoffee(domain.CoffeeForm{
		Name:             "Yirgacheffe",
		Origin:           "Ethiopia",
		GrindSize:        "5",
		WaterTemperature: "93",
		CoffeeAmount:     "18",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.GrindSize == nil || *got.GrindSize != 5 {
		t.Errorf("grindSize = %v; want 5", got.GrindSize)
	}
	if got.WaterTemperature == nil || *got.WaterTemperature != 93.0 {
		t.Errorf("waterTemperature = %v; want 93.0", got.WaterTemperature)
	}
	if got.CoffeeAmount == nil || *got.CoffeeAmount != 18.0 {
		t.Errorf("coffeeAmount = %v; want 18.0", got.CoffeeAmount)
	}
	if got.RoastLevel != domain.RoastLight {
		t.Errorf("roastLevel = %q; want default %q", got.RoastLevel, domain.RoastLight)
	}
	if got.Notes != nil {
		t.Errorf("notes = %q; want nil", *got.Notes)
	}
}

func TestValidateCoffee_MissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		form  domain.CoffeeForm
		field string
	}{
		{"empty name", domain.CoffeeForm{Name: "", Origin: "Brazil"}, "name"},
		{"empty origin", domain.CoffeeForm{Name: "Bourbon", Origin: ""}, "origin"},
		{"both empty", domain.CoffeeForm{}, "name"},
		{"whitespace name", domain.CoffeeForm{Name: "   ", Origin: "Brazil"}, "name"},
		{"required wins over range", domain.CoffeeForm{Origin: "Brazil", GrindSize: "99"}, "name"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.ValidateCoffee(tc.form)
			if !errors.Is(err, domain.ErrMissingRequiredField) {
				t.Fatalf("err = %v; want %v", err, domain.ErrMissingRequiredField)
			}
			if err.Error() != "missing required field" {
				t.Errorf("reason = %q", err.Error())
			}
			var ve *domain.ValidationError
			if !errors.As(err, &ve) || ve.Field != tc.field {
				t.Errorf("field = %v; want %q", ve, tc.field)
			}
		})
	}
}

func TestValidateCoffee_GrindSize(t *testing.T) {
	for g := 1; g <= 10; g++ {
		f := validForm()
		f.GrindSize = fmt.Sprint(g)
		got, err := domain.ValidateCoffee(f)
		if err != nil {
			t.Fatalf("grindSize %d: unexpected error %v", g, err)
		}
		if *got.GrindSize != g {
			t.Fatalf("grindSize %d: got %d", g, *got.GrindSize)
		}
	}

	for _, s := range []string{"0", "11", "-1", "abc", "NaN", "Inf", "10.5", "0.9", "0x1p3", "0X1P+3", "1_0", "0x5", "5kg", "."} {
		t.Run(s, func(t *testing.T) {
			f := validForm()
			f.GrindSize = s
			_, err := domain.ValidateCoffee(f)
			if !errors.Is(err, domain.ErrGrindSizeRange) {
				t.Fatalf("err = %v; want %v", err, domain.ErrGrindSizeRange)
			}
		})
	}
}

func TestValidateCoffee_GrindSizeTruncates(t *testing.T) {
	f := validForm()
	f.GrindSize = "5.7"
	got, err := domain.ValidateCoffee(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got.GrindSize != 5 {
		t.Fatalf("grindSize = %d; want 5", *got.GrindSize)
	}
}

func TestValidateCoffee_WaterTemperature(t *testing.T) {
	for _, s := range []string{"0", "0.5", "50", "93.5", "100", ".5", "+90", "9.3e1"} {
		f := validForm()
		f.WaterTemperature = s
		if _, err := domain.ValidateCoffee(f); err != nil {
			t.Errorf("waterTemperature %s: unexpected error %v", s, err)
		}
	}
	for _, s := range []string{"-0.1", "100.01", "hot", "1e3", "0x5A", "9_3", "Infinity"} {
		f := validForm()
		f.WaterTemperature = s
		_, err := domain.ValidateCoffee(f)
		if !errors.Is(err, domain.ErrTemperatureRange) {
			t.Errorf("waterTemperature %s: err = %v; want %v", s, err, domain.ErrTemperatureRange)
		}
	}
}

func TestValidateCoffee_CoffeeAmount(t *testing.T) {
	for _, s := range []string{"0", "18", "1000.25"} {
		f := validForm()
		f.CoffeeAmount = s
		if _, err := domain.ValidateCoffee(f); err != nil {
			t.Errorf("coffeeAmount %s: unexpected error %v", s, err)
		}
	}
	for _, s := range []string{"-1", "-0.01", "lots", "0x12", "1_8", "0b101"} {
		f := validForm()
		f.CoffeeAmount = s
		_, err := domain.ValidateCoffee(f)
		if !errors.Is(err, domain.ErrNegativeAmount) {
			t.Errorf("coffeeAmount %s: err = %v; want %v", s, err, domain.ErrNegativeAmount)
		}
	}
}

func TestValidateCoffee_RuleOrder(t *testing.T) {
	f := validForm()
	f.GrindSize = "0"
	f.WaterTemperature = "200"
	f.CoffeeAmount = "-5"
	_, err := domain.ValidateCoffee(f)
	if !errors.Is(err, domain.ErrGrindSizeRange) {
		t.Fatalf("err = %v; want grind size rule first", err)
	}

	f.GrindSize = ""
	_, err = domain.ValidateCoffee(f)
	if !errors.Is(err, domain.ErrTemperatureRange) {
		t.Fatalf("err = %v; want temperature rule second", err)
	}
}

func TestValidateCoffee_RoastLevel(t *testing.T) {
	tests := []struct {
		in   string
		want domain.RoastLevel
	}{
		{"", domain.RoastLight},
		{"dark", domain.RoastDark},
		{"Medium-Light", domain.RoastMediumLight},
		{"中深焙", domain.RoastMediumDark},
	}
	for _, tc := range tests {
		f := validForm()
		f.RoastLevel = tc.in
		got, err := domain.ValidateCoffee(f)
		if err != nil {
			t.Fatalf("roastLevel %q: unexpected error %v", tc.in, err)
		}
		if got.RoastLevel != tc.want {
			t.Errorf("roastLevel %q = %q; want %q", tc.in, got.RoastLevel, tc.want)
		}
	}

	f := validForm()
	f.RoastLevel = "burnt"
	if _, err := domain.ValidateCoffee(f); !errors.Is(err, domain.ErrUnknownRoastLevel) {
		t.Fatalf("err = %v; want %v", err, domain.ErrUnknownRoastLevel)
	}
}

func TestValidateCoffee_Notes(t *testing.T) {
	f := validForm()
	f.Notes = "  bright, floral  "
	got, err := domain.ValidateCoffee(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Notes == nil || *got.Notes != "bright, floral" {
		t.Fatalf("notes = %v", got.Notes)
	}
}
