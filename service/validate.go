package service

import (
	"fmt"
	"time"

	"proteintrack/backend/types"
)

func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

func ValidateUnit(unit string) error {
	if unit == "" {
		return fmt.Errorf("unit is required")
	}
	return nil
}

func ValidateProteinPerUnit(proteinPerUnit float64) error {
	if proteinPerUnit <= 0 {
		return fmt.Errorf("protein per unit must be positive")
	}
	return nil
}

func ValidateQuantity(quantity float64) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	return nil
}

func ValidateItemID(itemID string) error {
	if itemID == "" {
		return fmt.Errorf("item_id is required")
	}
	return nil
}

func ValidateDate(date string) error {
	_, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("Invalid date format. Use YYYY-MM-DD")
	}
	return nil
}

func ValidateItemRequest(req types.ItemRequest) error {
	if err := ValidateName(req.Name); err != nil {
		return err
	}
	if err := ValidateUnit(req.Unit); err != nil {
		return err
	}
	if err := ValidateProteinPerUnit(req.ProteinPerUnit); err != nil {
		return err
	}
	return nil
}

func ValidateConsumptionRequest(req types.ConsumptionRequest) error {
	if err := ValidateDate(req.Date); err != nil {
		return err
	}
	if err := ValidateItemID(req.ItemID); err != nil {
		return err
	}
	if err := ValidateQuantity(req.Quantity); err != nil {
		return err
	}
	return nil
}
