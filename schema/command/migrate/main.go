package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/sharecare/share-care-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("sharecare")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetDefault("mongo.database", "share_and_care")
}

func main() {
	indexer := schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database"))
	defer indexer.Close()

	fmt.Println("create indexes for", schema.FoodCollection, "and", schema.FoodRequestCollection)
	indexer.IndexAll()
	fmt.Println("indexes created")
}
