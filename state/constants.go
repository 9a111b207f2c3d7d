package state

var (
	// TopologyPath is the default input document
	TopologyPath = "topology.yaml"
	// OutputDir receives one file per device
	OutputDir = "output"
	OutputExt = ".txt"
	LogPath   = ""

	InterfacePrefix = "GigabitEthernet"
	OspfProcess     = 1
	RipVersion      = 2

	// MaxNameLen bounds device names, which also become file names
	MaxNameLen = 100
)
