package service

// equipment is fixed for the process lifetime; order is the display order.
var equipment = [...]string{
	"Control Valve",
	"Pressure Gauge",
	"Displacement Level Transmitter",
	"Flow Transmitter",
	"Pressure Transmitter",
	"Temperature Transmitter",
	"Level Transmitter",
	"Control Panel",
	"SCADA System",
	"PLC",
	"DCS",
	"Safety Instrumented System (SIS)",
	"Emergency Shutdown System (ESD)",
	"Fire and Gas Detection System",
	"Compressor",
	"Pump",
	"Turbine",
	"Heat Exchanger",
	"Separator",
	"Storage Tank",
	"Pipeline",
	"Valve Actuator",
}

type CatalogService struct{}

func NewCatalogService() *CatalogService { return &CatalogService{} }

// List returns a fresh copy so callers cannot alter the catalog.
func (CatalogService) List() []string {
	out := make([]string, len(equipment))
	copy(out, equipment[:])
	return out
}
