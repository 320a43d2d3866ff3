package warehouse

import "testing"

func TestWarehouse_Utilization(t *testing.T) {
	tests := []struct {
		name     string
		w        Warehouse
		util     int
		highLoad bool
		free     int
	}{
		{"new york", Warehouse{Capacity: 5000, Used: 3200}, 64, false, 1800},
		{"california", Warehouse{Capacity: 8000, Used: 7100}, 89, true, 900},
		{"texas", Warehouse{Capacity: 6000, Used: 2500}, 42, false, 3500},
		{"exactly eighty", Warehouse{Capacity: 100, Used: 80}, 80, false, 20},
		{"zero capacity", Warehouse{Capacity: 0, Used: 10}, 0, false, 0},
		{"over capacity", Warehouse{Capacity: 10, Used: 12}, 120, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.w.Utilization(); got != tt.util {
				t.Errorf("Utilization() = %d, want %d", got, tt.util)
			}
			if got := tt.w.IsHighLoad(); got != tt.highLoad {
				t.Errorf("IsHighLoad() = %v, want %v", got, tt.highLoad)
			}
			if got := tt.w.Free(); got != tt.free {
				t.Errorf("Free() = %d, want %d", got, tt.free)
			}
		})
	}
}
