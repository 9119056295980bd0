package formation

// catalog maps formation name to its ordered 11-slot layout. The
// coordinates are pitch percentages used only for display; the
// assignment algorithm reads the labels alone.
var catalog = map[string][]Slot{
	"3-1-4-2": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 25, Y: 75, Label: "CB"},
		{X: 50, Y: 78, Label: "CB"},
		{X: 75, Y: 75, Label: "CB"},
		{X: 50, Y: 62, Label: "CDM"},
		{X: 15, Y: 48, Label: "LM"},
		{X: 38, Y: 50, Label: "CM"},
		{X: 62, Y: 50, Label: "CM"},
		{X: 85, Y: 48, Label: "RM"},
		{X: 38, Y: 25, Label: "ST"},
		{X: 62, Y: 25, Label: "ST"},
	},
	"3-4-1-2": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 25, Y: 75, Label: "CB"},
		{X: 50, Y: 78, Label: "CB"},
		{X: 75, Y: 75, Label: "CB"},
		{X: 15, Y: 52, Label: "LM"},
		{X: 38, Y: 55, Label: "CM"},
		{X: 62, Y: 55, Label: "CM"},
		{X: 85, Y: 52, Label: "RM"},
		{X: 50, Y: 35, Label: "CAM"},
		{X: 38, Y: 20, Label: "ST"},
		{X: 62, Y: 20, Label: "ST"},
	},
	"3-4-2-1": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 25, Y: 75, Label: "CB"},
		{X: 50, Y: 78, Label: "CB"},
		{X: 75, Y: 75, Label: "CB"},
		{X: 15, Y: 52, Label: "LM"},
		{X: 38, Y: 55, Label: "CM"},
		{X: 62, Y: 55, Label: "CM"},
		{X: 85, Y: 52, Label: "RM"},
		{X: 35, Y: 32, Label: "CF"},
		{X: 65, Y: 32, Label: "CF"},
		{X: 50, Y: 18, Label: "ST"},
	},
	"3-4-3": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 25, Y: 75, Label: "CB"},
		{X: 50, Y: 78, Label: "CB"},
		{X: 75, Y: 75, Label: "CB"},
		{X: 15, Y: 52, Label: "LM"},
		{X: 38, Y: 55, Label: "CM"},
		{X: 62, Y: 55, Label: "CM"},
		{X: 85, Y: 52, Label: "RM"},
		{X: 15, Y: 25, Label: "LW"},
		{X: 50, Y: 20, Label: "ST"},
		{X: 85, Y: 25, Label: "RW"},
	},
	"3-4-3 Flat": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 25, Y: 75, Label: "CB"},
		{X: 50, Y: 78, Label: "CB"},
		{X: 75, Y: 75, Label: "CB"},
		{X: 15, Y: 52, Label: "LM"},
		{X: 38, Y: 52, Label: "CM"},
		{X: 62, Y: 52, Label: "CM"},
		{X: 85, Y: 52, Label: "RM"},
		{X: 15, Y: 25, Label: "LW"},
		{X: 50, Y: 20, Label: "ST"},
		{X: 85, Y: 25, Label: "RW"},
	},
	"3-5-2": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 25, Y: 75, Label: "CB"},
		{X: 50, Y: 78, Label: "CB"},
		{X: 75, Y: 75, Label: "CB"},
		{X: 10, Y: 50, Label: "LWB"},
		{X: 35, Y: 55, Label: "CM"},
		{X: 50, Y: 50, Label: "CM"},
		{X: 65, Y: 55, Label: "CM"},
		{X: 90, Y: 50, Label: "RWB"},
		{X: 38, Y: 25, Label: "ST"},
		{X: 62, Y: 25, Label: "ST"},
	},
	"4-1-2-1-2": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 50, Y: 62, Label: "CDM"},
		{X: 30, Y: 48, Label: "CM"},
		{X: 70, Y: 48, Label: "CM"},
		{X: 50, Y: 35, Label: "CAM"},
		{X: 38, Y: 20, Label: "ST"},
		{X: 62, Y: 20, Label: "ST"},
	},
	"4-1-2-1-2 (2)": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 50, Y: 60, Label: "CDM"},
		{X: 25, Y: 45, Label: "LM"},
		{X: 75, Y: 45, Label: "RM"},
		{X: 50, Y: 35, Label: "CAM"},
		{X: 38, Y: 20, Label: "ST"},
		{X: 62, Y: 20, Label: "ST"},
	},
	"4-1-2-1-2 Narrow": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 50, Y: 62, Label: "CDM"},
		{X: 35, Y: 48, Label: "CM"},
		{X: 65, Y: 48, Label: "CM"},
		{X: 50, Y: 35, Label: "CAM"},
		{X: 40, Y: 20, Label: "ST"},
		{X: 60, Y: 20, Label: "ST"},
	},
	"4-1-2-1-2 Wide": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 50, Y: 62, Label: "CDM"},
		{X: 20, Y: 48, Label: "LM"},
		{X: 80, Y: 48, Label: "RM"},
		{X: 50, Y: 35, Label: "CAM"},
		{X: 38, Y: 20, Label: "ST"},
		{X: 62, Y: 20, Label: "ST"},
	},
	"4-1-3-2": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 50, Y: 58, Label: "CDM"},
		{X: 25, Y: 40, Label: "LM"},
		{X: 50, Y: 42, Label: "CAM"},
		{X: 75, Y: 40, Label: "RM"},
		{X: 38, Y: 22, Label: "ST"},
		{X: 62, Y: 22, Label: "ST"},
	},
	"4-1-4-1": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 50, Y: 60, Label: "CDM"},
		{X: 15, Y: 42, Label: "LM"},
		{X: 38, Y: 45, Label: "CM"},
		{X: 62, Y: 45, Label: "CM"},
		{X: 85, Y: 42, Label: "RM"},
		{X: 50, Y: 20, Label: "ST"},
	},
	"4-2-1-3": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 35, Y: 58, Label: "CDM"},
		{X: 65, Y: 58, Label: "CDM"},
		{X: 50, Y: 40, Label: "CAM"},
		{X: 15, Y: 25, Label: "LW"},
		{X: 50, Y: 20, Label: "ST"},
		{X: 85, Y: 25, Label: "RW"},
	},
	"4-2-2-2": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 35, Y: 58, Label: "CDM"},
		{X: 65, Y: 58, Label: "CDM"},
		{X: 35, Y: 40, Label: "CAM"},
		{X: 65, Y: 40, Label: "CAM"},
		{X: 38, Y: 22, Label: "ST"},
		{X: 62, Y: 22, Label: "ST"},
	},
	"4-2-3-1": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 35, Y: 58, Label: "CDM"},
		{X: 65, Y: 58, Label: "CDM"},
		{X: 15, Y: 38, Label: "LM"},
		{X: 50, Y: 38, Label: "CAM"},
		{X: 85, Y: 38, Label: "RM"},
		{X: 50, Y: 18, Label: "ST"},
	},
	"4-2-3-1 (2)": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 35, Y: 56, Label: "CDM"},
		{X: 65, Y: 56, Label: "CDM"},
		{X: 25, Y: 38, Label: "LM"},
		{X: 50, Y: 35, Label: "CAM"},
		{X: 75, Y: 38, Label: "RM"},
		{X: 50, Y: 18, Label: "ST"},
	},
	"4-2-3-1 Narrow": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 35, Y: 58, Label: "CDM"},
		{X: 65, Y: 58, Label: "CDM"},
		{X: 25, Y: 38, Label: "CM"},
		{X: 50, Y: 36, Label: "CAM"},
		{X: 75, Y: 38, Label: "CM"},
		{X: 50, Y: 18, Label: "ST"},
	},
	"4-2-3-1 Wide": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 35, Y: 58, Label: "CDM"},
		{X: 65, Y: 58, Label: "CDM"},
		{X: 10, Y: 38, Label: "LW"},
		{X: 50, Y: 38, Label: "CAM"},
		{X: 90, Y: 38, Label: "RW"},
		{X: 50, Y: 18, Label: "ST"},
	},
	"4-2-4": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 35, Y: 52, Label: "CDM"},
		{X: 65, Y: 52, Label: "CDM"},
		{X: 15, Y: 25, Label: "LW"},
		{X: 38, Y: 22, Label: "ST"},
		{X: 62, Y: 22, Label: "ST"},
		{X: 85, Y: 25, Label: "RW"},
	},
	"4-3-1-2": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 25, Y: 55, Label: "CM"},
		{X: 50, Y: 58, Label: "CM"},
		{X: 75, Y: 55, Label: "CM"},
		{X: 50, Y: 38, Label: "CAM"},
		{X: 38, Y: 22, Label: "ST"},
		{X: 62, Y: 22, Label: "ST"},
	},
	"4-3-2-1": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 25, Y: 55, Label: "CM"},
		{X: 50, Y: 58, Label: "CM"},
		{X: 75, Y: 55, Label: "CM"},
		{X: 35, Y: 35, Label: "CF"},
		{X: 65, Y: 35, Label: "CF"},
		{X: 50, Y: 18, Label: "ST"},
	},
	"4-3-3": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 25, Y: 52, Label: "CM"},
		{X: 50, Y: 55, Label: "CM"},
		{X: 75, Y: 52, Label: "CM"},
		{X: 15, Y: 28, Label: "LW"},
		{X: 50, Y: 22, Label: "ST"},
		{X: 85, Y: 28, Label: "RW"},
	},
	"4-3-3 (2)": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 50, Y: 58, Label: "CDM"},
		{X: 30, Y: 48, Label: "CM"},
		{X: 70, Y: 48, Label: "CM"},
		{X: 15, Y: 28, Label: "LW"},
		{X: 50, Y: 22, Label: "ST"},
		{X: 85, Y: 28, Label: "RW"},
	},
	"4-3-3 (3)": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 30, Y: 55, Label: "CM"},
		{X: 70, Y: 55, Label: "CM"},
		{X: 50, Y: 42, Label: "CAM"},
		{X: 15, Y: 28, Label: "LW"},
		{X: 50, Y: 22, Label: "ST"},
		{X: 85, Y: 28, Label: "RW"},
	},
	"4-3-3 (4)": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 35, Y: 58, Label: "CDM"},
		{X: 65, Y: 58, Label: "CDM"},
		{X: 50, Y: 45, Label: "CM"},
		{X: 15, Y: 28, Label: "LW"},
		{X: 50, Y: 22, Label: "ST"},
		{X: 85, Y: 28, Label: "RW"},
	},
	"4-3-3 Attack": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 50, Y: 52, Label: "CM"},
		{X: 30, Y: 40, Label: "CAM"},
		{X: 70, Y: 40, Label: "CAM"},
		{X: 15, Y: 25, Label: "LW"},
		{X: 50, Y: 20, Label: "ST"},
		{X: 85, Y: 25, Label: "RW"},
	},
	"4-3-3 Defend": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 25, Y: 58, Label: "CDM"},
		{X: 50, Y: 60, Label: "CDM"},
		{X: 75, Y: 58, Label: "CDM"},
		{X: 15, Y: 28, Label: "LW"},
		{X: 50, Y: 22, Label: "ST"},
		{X: 85, Y: 28, Label: "RW"},
	},
	"4-3-3 Flat": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 25, Y: 52, Label: "CM"},
		{X: 50, Y: 52, Label: "CM"},
		{X: 75, Y: 52, Label: "CM"},
		{X: 15, Y: 28, Label: "LW"},
		{X: 50, Y: 22, Label: "ST"},
		{X: 85, Y: 28, Label: "RW"},
	},
	"4-3-3 Holding": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 50, Y: 60, Label: "CDM"},
		{X: 30, Y: 50, Label: "CM"},
		{X: 70, Y: 50, Label: "CM"},
		{X: 15, Y: 28, Label: "LW"},
		{X: 50, Y: 22, Label: "ST"},
		{X: 85, Y: 28, Label: "RW"},
	},
	"4-4-1-1 (2)": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 15, Y: 48, Label: "LM"},
		{X: 38, Y: 52, Label: "CM"},
		{X: 62, Y: 52, Label: "CM"},
		{X: 85, Y: 48, Label: "RM"},
		{X: 50, Y: 32, Label: "CF"},
		{X: 50, Y: 18, Label: "ST"},
	},
	"4-4-1-1 Midfield": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 15, Y: 48, Label: "LM"},
		{X: 38, Y: 52, Label: "CM"},
		{X: 62, Y: 52, Label: "CM"},
		{X: 85, Y: 48, Label: "RM"},
		{X: 50, Y: 38, Label: "CAM"},
		{X: 50, Y: 20, Label: "ST"},
	},
	"4-4-2": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 15, Y: 50, Label: "LM"},
		{X: 38, Y: 52, Label: "CM"},
		{X: 62, Y: 52, Label: "CM"},
		{X: 85, Y: 50, Label: "RM"},
		{X: 38, Y: 25, Label: "ST"},
		{X: 62, Y: 25, Label: "ST"},
	},
	"4-4-2 (2)": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 15, Y: 50, Label: "LM"},
		{X: 38, Y: 55, Label: "CDM"},
		{X: 62, Y: 55, Label: "CDM"},
		{X: 85, Y: 50, Label: "RM"},
		{X: 38, Y: 25, Label: "ST"},
		{X: 62, Y: 25, Label: "ST"},
	},
	"4-4-2 Flat": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 15, Y: 50, Label: "LM"},
		{X: 38, Y: 50, Label: "CM"},
		{X: 62, Y: 50, Label: "CM"},
		{X: 85, Y: 50, Label: "RM"},
		{X: 38, Y: 25, Label: "ST"},
		{X: 62, Y: 25, Label: "ST"},
	},
	"4-4-2 Holding": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 15, Y: 52, Label: "LM"},
		{X: 38, Y: 58, Label: "CDM"},
		{X: 62, Y: 58, Label: "CDM"},
		{X: 85, Y: 52, Label: "RM"},
		{X: 38, Y: 25, Label: "ST"},
		{X: 62, Y: 25, Label: "ST"},
	},
	"4-5-1": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 15, Y: 48, Label: "LM"},
		{X: 35, Y: 55, Label: "CM"},
		{X: 50, Y: 42, Label: "CAM"},
		{X: 65, Y: 55, Label: "CM"},
		{X: 85, Y: 48, Label: "RM"},
		{X: 50, Y: 20, Label: "ST"},
	},
	"4-5-1 (2)": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 15, Y: 48, Label: "LM"},
		{X: 35, Y: 52, Label: "CM"},
		{X: 50, Y: 58, Label: "CDM"},
		{X: 65, Y: 52, Label: "CM"},
		{X: 85, Y: 48, Label: "RM"},
		{X: 50, Y: 20, Label: "ST"},
	},
	"4-5-1 Attack": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 15, Y: 42, Label: "LM"},
		{X: 35, Y: 48, Label: "CM"},
		{X: 50, Y: 38, Label: "CAM"},
		{X: 65, Y: 48, Label: "CM"},
		{X: 85, Y: 42, Label: "RM"},
		{X: 50, Y: 18, Label: "ST"},
	},
	"4-5-1 Flat": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 15, Y: 72, Label: "LB"},
		{X: 38, Y: 75, Label: "CB"},
		{X: 62, Y: 75, Label: "CB"},
		{X: 85, Y: 72, Label: "RB"},
		{X: 15, Y: 50, Label: "LM"},
		{X: 35, Y: 50, Label: "CM"},
		{X: 50, Y: 50, Label: "CM"},
		{X: 65, Y: 50, Label: "CM"},
		{X: 85, Y: 50, Label: "RM"},
		{X: 50, Y: 20, Label: "ST"},
	},
	"5-2-1-2": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 10, Y: 70, Label: "LWB"},
		{X: 30, Y: 75, Label: "CB"},
		{X: 50, Y: 78, Label: "CB"},
		{X: 70, Y: 75, Label: "CB"},
		{X: 90, Y: 70, Label: "RWB"},
		{X: 35, Y: 52, Label: "CM"},
		{X: 65, Y: 52, Label: "CM"},
		{X: 50, Y: 38, Label: "CAM"},
		{X: 38, Y: 22, Label: "ST"},
		{X: 62, Y: 22, Label: "ST"},
	},
	"5-2-3": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 10, Y: 70, Label: "LWB"},
		{X: 30, Y: 75, Label: "CB"},
		{X: 50, Y: 78, Label: "CB"},
		{X: 70, Y: 75, Label: "CB"},
		{X: 90, Y: 70, Label: "RWB"},
		{X: 35, Y: 50, Label: "CM"},
		{X: 65, Y: 50, Label: "CM"},
		{X: 15, Y: 25, Label: "LW"},
		{X: 50, Y: 22, Label: "ST"},
		{X: 85, Y: 25, Label: "RW"},
	},
	"5-3-2": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 10, Y: 70, Label: "LWB"},
		{X: 30, Y: 75, Label: "CB"},
		{X: 50, Y: 78, Label: "CB"},
		{X: 70, Y: 75, Label: "CB"},
		{X: 90, Y: 70, Label: "RWB"},
		{X: 30, Y: 52, Label: "CM"},
		{X: 50, Y: 50, Label: "CM"},
		{X: 70, Y: 52, Label: "CM"},
		{X: 38, Y: 25, Label: "ST"},
		{X: 62, Y: 25, Label: "ST"},
	},
	"5-3-2 Holding": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 10, Y: 70, Label: "LWB"},
		{X: 30, Y: 75, Label: "CB"},
		{X: 50, Y: 78, Label: "CB"},
		{X: 70, Y: 75, Label: "CB"},
		{X: 90, Y: 70, Label: "RWB"},
		{X: 30, Y: 55, Label: "CM"},
		{X: 50, Y: 58, Label: "CDM"},
		{X: 70, Y: 55, Label: "CM"},
		{X: 38, Y: 25, Label: "ST"},
		{X: 62, Y: 25, Label: "ST"},
	},
	"5-4-1": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 10, Y: 70, Label: "LWB"},
		{X: 30, Y: 75, Label: "CB"},
		{X: 50, Y: 78, Label: "CB"},
		{X: 70, Y: 75, Label: "CB"},
		{X: 90, Y: 70, Label: "RWB"},
		{X: 15, Y: 48, Label: "LM"},
		{X: 38, Y: 50, Label: "CM"},
		{X: 62, Y: 50, Label: "CM"},
		{X: 85, Y: 48, Label: "RM"},
		{X: 50, Y: 22, Label: "ST"},
	},
	"5-4-1 Flat": {
		{X: 50, Y: 90, Label: "GK"},
		{X: 10, Y: 70, Label: "LWB"},
		{X: 30, Y: 75, Label: "CB"},
		{X: 50, Y: 78, Label: "CB"},
		{X: 70, Y: 75, Label: "CB"},
		{X: 90, Y: 70, Label: "RWB"},
		{X: 15, Y: 50, Label: "LM"},
		{X: 38, Y: 50, Label: "CM"},
		{X: 62, Y: 50, Label: "CM"},
		{X: 85, Y: 50, Label: "RM"},
		{X: 50, Y: 22, Label: "ST"},
	},
}
