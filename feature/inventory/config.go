package inventory

// Config holds the locations of the three source files.
type Config struct {
	// Manufacturers is the primary source: id, manufacturer, type, optional condition.
	Manufacturers string `mapstructure:"manufacturers" default:"ManufacturerList.csv"`
	// Prices is the price source: id, price.
	Prices string `mapstructure:"prices" default:"PriceList.csv"`
	// ServiceDates is the service date source: id, month/day/year.
	ServiceDates string `mapstructure:"service_dates" default:"ServiceDatesList.csv"`
}
