package product

import "time"

const (
	// collection name
	productNode string = "products"

	// Fields' name and path
	CodeFieldPath     string = "code"
	NameFieldPath     string = "name"
	PriceFieldPath    string = "price"
	QuantityFieldPath string = "quantity"
	OwnerFieldPath    string = "userId"

	// It must not exceed the delivery timeout of database.FirestoreClient.WatchQuery
	channelWriteTimeout time.Duration = time.Second * 3
)
