package shared

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"restaurant_scout/internal/domain"
)

type batchFile struct {
	Searches []domain.BatchSearch `yaml:"searches"`
}

// LoadBatch reads a YAML list of saved searches:
//
//	searches:
//	  - city: İstanbul
//	    district: Üsküdar
//	    foodType: köfteci
//	    minRating: 4.5
//	    sheetName: Uskudar_Kofteci
func LoadBatch(path string) ([]domain.BatchSearch, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBatch(b)
}

func ParseBatch(b []byte) ([]domain.BatchSearch, error) {
	var f batchFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse batch: %w", err)
	}
	for i := range f.Searches {
		if f.Searches[i].Request.MinRating == 0 {
			f.Searches[i].Request.MinRating = domain.DefaultMinRating
		}
	}
	return f.Searches, nil
}

// DefaultBatch is used when no batch file is given.
func DefaultBatch() []domain.BatchSearch {
	mk := func(district, food string) domain.BatchSearch {
		return domain.BatchSearch{Request: domain.SearchRequest{
			City: "İstanbul", District: district, FoodType: food, MinRating: domain.DefaultMinRating,
		}}
	}
	return []domain.BatchSearch{
		mk("Üsküdar", "köfteci"),
		mk("Sarıyer", "kebapçı"),
		mk("Beşiktaş", "pideci"),
		mk("Beşiktaş", "dondurmacı"),
		mk("Kadıköy", "balık"),
	}
}
