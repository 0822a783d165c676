package feed

// Config holds configuration for the supplier feed loader.
type Config struct {
	// URL is the location of the ZIP'd stock sheet.
	URL string `mapstructure:"url" default:"https://timeworld.ru/upload/files/ostatki.zip"`
	// File is the spreadsheet entry inside the archive.
	File string `mapstructure:"file" default:"ostatki.xls"`
	// HeaderRow is the zero-based row index of the column headers; data
	// rows follow it.
	HeaderRow int `mapstructure:"header_row" default:"17"`
	// CodeColumn is the header of the SKU code column.
	CodeColumn string `mapstructure:"code_column" default:"Код"`
	// QuantityColumn is the header of the stock count column.
	QuantityColumn string `mapstructure:"quantity_column" default:"Количество"`
	// PriceColumn is the header of the price column.
	PriceColumn string `mapstructure:"price_column" default:"Цена"`
	// TimeoutSeconds is the download timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}
