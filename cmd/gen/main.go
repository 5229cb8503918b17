package main

import (
	"coshare/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.CatalogSnapshotModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
