package memory

import (
	"time"

	"nexstock/internal/supplier"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SeedSuppliers returns the demo suppliers. Names match the supplier column of the demo catalog.
func SeedSuppliers() []supplier.Supplier {
	return []supplier.Supplier{
		{ID: "SUP-001", Name: "TechSply", ContactPerson: "Maya Chen", Email: "maya@techsply.com", Phone: "+1 415 555 0134", Category: "Electronics", Rating: 5, Status: supplier.StatusActive, LastOrderDate: date(2024, 10, 2), Location: "San Jose, CA", JoinDate: date(2021, 3, 15)},
		{ID: "SUP-002", Name: "OfficeLux", ContactPerson: "Daniel Ortiz", Email: "d.ortiz@officelux.com", Phone: "+1 312 555 0199", Category: "Furniture", Rating: 4, Status: supplier.StatusActive, LastOrderDate: date(2024, 9, 21), Location: "Chicago, IL", JoinDate: date(2020, 7, 1)},
		{ID: "SUP-003", Name: "KeyMaster", ContactPerson: "Priya Nair", Email: "priya@keymaster.io", Phone: "+1 512 555 0147", Category: "Electronics", Rating: 4, Status: supplier.StatusActive, LastOrderDate: date(2024, 9, 30), Location: "Austin, TX", JoinDate: date(2022, 1, 10)},
		{ID: "SUP-004", Name: "VisionInc", ContactPerson: "Tom Becker", Email: "tom@visioninc.com", Phone: "+1 206 555 0111", Category: "Electronics", Rating: 3, Status: supplier.StatusPending, LastOrderDate: date(2024, 8, 12), Location: "Seattle, WA", JoinDate: date(2023, 5, 22)},
		{ID: "SUP-005", Name: "ConnectAll", ContactPerson: "Lena Fischer", Email: "lena@connectall.net", Phone: "+1 646 555 0170", Category: "Accessories", Rating: 4, Status: supplier.StatusActive, LastOrderDate: date(2024, 10, 5), Location: "New York, NY", JoinDate: date(2021, 11, 3)},
		{ID: "SUP-006", Name: "AluWorks", ContactPerson: "Marco Rossi", Email: "marco@aluworks.com", Phone: "+1 303 555 0122", Category: "Accessories", Rating: 2, Status: supplier.StatusInactive, LastOrderDate: date(2024, 2, 18), Location: "Denver, CO", JoinDate: date(2019, 9, 9)},
		{ID: "SUP-007", Name: "SoundPro", ContactPerson: "Aisha Bello", Email: "aisha@soundpro.audio", Phone: "+1 615 555 0158", Category: "Electronics", Rating: 5, Status: supplier.StatusActive, LastOrderDate: date(2024, 9, 28), Location: "Nashville, TN", JoinDate: date(2022, 6, 14)},
		{ID: "SUP-008", Name: "Lumina", ContactPerson: "Kenji Sato", Email: "kenji@lumina.home", Phone: "+1 305 555 0186", Category: "Home", Rating: 4, Status: supplier.StatusActive, LastOrderDate: date(2024, 10, 8), Location: "Miami, FL", JoinDate: date(2023, 2, 27)},
	}
}
