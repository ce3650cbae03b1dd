package catalog

func groupByTopic() Topic {
	return Topic{
		Name:        "GROUP BY",
		Description: "Collapses rows sharing the same value into one group, so aggregates like COUNT and SUM can be computed per group.",
		Syntax:      "SELECT column, SUM(x) FROM table_name GROUP BY column;",
		UseCase:     "Summaries: order totals per customer, headcount per department.",
		Examples: []Example{
			{
				Title: "Total order amount per customer",
				Steps: []Step{
					{
						Explanation: "The raw Orders table: Alice (customer 1) appears twice, everyone else once.",
						Query:       "SELECT CustomerID, COUNT(*) AS Orders, SUM(Amount) AS Total\nFROM Orders\nGROUP BY CustomerID;",
						Tables:      []Table{ordersTable()},
					},
					{
						Explanation: "Rows collapse by CustomerID. Alice's two orders merge into one group with Orders = 2 and Total = 370.",
						Query:       "SELECT CustomerID, COUNT(*) AS Orders, SUM(Amount) AS Total\nFROM Orders\nGROUP BY CustomerID;",
						Tables: []Table{
							{
								Name:    "Result",
								Columns: []string{"CustomerID", "Orders", "Total"},
								Rows: []Row{
									highlight(map[string]Value{"CustomerID": 1, "Orders": 2, "Total": 370}),
									row(map[string]Value{"CustomerID": 2, "Orders": 1, "Total": 75}),
									row(map[string]Value{"CustomerID": 3, "Orders": 1, "Total": 180}),
									row(map[string]Value{"CustomerID": 6, "Orders": 1, "Total": 90}),
								},
							},
						},
					},
				},
			},
		},
	}
}

func unionTopic() Topic {
	return Topic{
		Name:        "UNION",
		Description: "Stacks the results of two queries with compatible columns into one result, removing duplicate rows.",
		Syntax:      "SELECT column FROM a UNION SELECT column FROM b;",
		UseCase:     "Merging similar data from different places: cities of customers and cities of suppliers as one list.",
		Examples: []Example{
			{
				Title: "Combine two city lists",
				Steps: []Step{
					{
						Explanation: "Two independent queries, each producing a single City column. London appears in both.",
						Query:       "SELECT City FROM Customers\nUNION\nSELECT City FROM Suppliers;",
						Tables: []Table{
							{
								Name:    "Customer cities",
								Columns: []string{"City"},
								Rows: []Row{
									row(map[string]Value{"City": "London"}),
									row(map[string]Value{"City": "Paris"}),
									row(map[string]Value{"City": "Berlin"}),
									row(map[string]Value{"City": "Madrid"}),
								},
							},
							{
								Name:    "Supplier cities",
								Columns: []string{"City"},
								Rows: []Row{
									row(map[string]Value{"City": "London"}),
									row(map[string]Value{"City": "Oslo"}),
								},
							},
						},
					},
					{
						Explanation: "UNION stacks both lists and removes duplicates, so London appears once in the combined result.",
						Query:       "SELECT City FROM Customers\nUNION\nSELECT City FROM Suppliers;",
						Tables: []Table{
							{
								Name:    "Result",
								Columns: []string{"City"},
								Rows: []Row{
									row(map[string]Value{"City": "London"}),
									row(map[string]Value{"City": "Paris"}),
									row(map[string]Value{"City": "Berlin"}),
									row(map[string]Value{"City": "Madrid"}),
									inserted(map[string]Value{"City": "Oslo"}),
								},
							},
						},
					},
				},
			},
		},
	}
}
