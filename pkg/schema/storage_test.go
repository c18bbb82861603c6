package schema

import (
	"testing"

	"github.com/sparecores/sc-crawler/pkg/scfields"
)

func validStorage() Storage {
	return Storage{VendorID: "aws", StorageID: "gp3", Name: "General Purpose SSD", StorageType: scfields.StorageSSD}
}

func TestStorage_Validate(t *testing.T) {
	if err := validStorage().Validate(); err != nil {
		t.Errorf("expected valid storage, got %v", err)
	}

	badType := validStorage()
	badType.StorageType = "NOT_A_TYPE"
	if err := badType.Validate(); err == nil {
		t.Error("expected an error for an invalid storage_type")
	}

	min, max := 100, 50
	inverted := validStorage()
	inverted.MinSize, inverted.MaxSize = &min, &max
	if err := inverted.Validate(); err == nil {
		t.Error("expected an error when min_size exceeds max_size")
	}
}

func TestStorageScd_PrimaryKeyIncludesObservedAt(t *testing.T) {
	scd := StorageScd{Storage: validStorage()}
	pk := scd.PrimaryKeys()
	if _, ok := pk["observed_at"]; !ok {
		t.Error("expected observed_at to be part of the SCD primary key")
	}
}
