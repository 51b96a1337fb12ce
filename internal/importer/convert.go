package importer

import "github.com/alexanderramin/daybill/internal/billing"

// ToRecords converts a project set into billing records. Values are passed
// through verbatim; parsing and range checks happen in billing.NewProjectSet.
func ToRecords(set ProjectSetImport) []billing.Record {
	records := make([]billing.Record, 0, len(set.Projects))
	for _, p := range set.Projects {
		records = append(records, billing.Record{
			Name:      p.Name,
			Tier:      p.City,
			StartDate: p.StartDate,
			EndDate:   p.EndDate,
		})
	}
	return records
}
