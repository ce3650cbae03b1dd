package catalog

// Default builds the full topic catalog. Slice order is the menu order the
// UI presents. The catalog is constructed once and never mutated.
func Default() Catalog {
	return Catalog{
		selectTopic(),
		whereTopic(),
		innerJoinTopic(),
		leftJoinTopic(),
		rightJoinTopic(),
		fullJoinTopic(),
		groupByTopic(),
		orderByTopic(),
		unionTopic(),
		subqueriesTopic(),
		cteTopic(),
		windowTopic(),
		insertTopic(),
		updateTopic(),
		deleteTopic(),
		createTableTopic(),
		alterTableTopic(),
		dropTableTopic(),
	}
}
