package catalog

func subqueriesTopic() Topic {
	return Topic{
		Name:        "Subqueries",
		Description: "A query nested inside another. The inner query runs first and its result feeds the outer query's condition.",
		Syntax:      "SELECT * FROM t WHERE x > (SELECT AVG(x) FROM t);",
		UseCase:     "Conditions that depend on the data itself: orders above the average amount.",
		Examples: []Example{
			{
				Title: "Orders above the average",
				Steps: []Step{
					{
						Explanation: "Step one: the inner query computes a single value, the average order amount.",
						Query:       "SELECT AVG(Amount) FROM Orders;",
						Tables: []Table{
							{
								Name:    "Inner result",
								Columns: []string{"AVG(Amount)"},
								Rows: []Row{
									row(map[string]Value{"AVG(Amount)": 143}),
								},
							},
						},
					},
					{
						Explanation: "Step two: the outer query filters Orders against that value, exactly as if we had written WHERE Amount > 143 by hand.",
						Query:       "SELECT * FROM Orders\nWHERE Amount > (SELECT AVG(Amount) FROM Orders);",
						Tables: []Table{
							{
								Name:    "Result",
								Columns: []string{"OrderID", "CustomerID", "Amount"},
								Rows: []Row{
									highlight(map[string]Value{"OrderID": 101, "CustomerID": 1, "Amount": 150}),
									highlight(map[string]Value{"OrderID": 103, "CustomerID": 1, "Amount": 220}),
									highlight(map[string]Value{"OrderID": 104, "CustomerID": 3, "Amount": 180}),
								},
							},
						},
					},
				},
			},
		},
	}
}

func cteTopic() Topic {
	return Topic{
		Name:        "CTE",
		Description: "A Common Table Expression names a query so the main statement can read it like a temporary table. Often clearer than nesting.",
		Syntax:      "WITH name AS (SELECT ...) SELECT * FROM name;",
		UseCase:     "Breaking a complex query into readable stages that can be referenced more than once.",
		Examples: []Example{
			{
				Title: "Name an intermediate result",
				Steps: []Step{
					{
						Explanation: "The WITH clause materializes big_orders: orders over 100, computed once up front.",
						Query:       "WITH big_orders AS (\n  SELECT * FROM Orders WHERE Amount > 100\n)\nSELECT CustomerID, COUNT(*) AS BigOrders\nFROM big_orders\nGROUP BY CustomerID;",
						Tables: []Table{
							{
								Name:    "big_orders",
								Columns: []string{"OrderID", "CustomerID", "Amount"},
								Rows: []Row{
									row(map[string]Value{"OrderID": 101, "CustomerID": 1, "Amount": 150}),
									row(map[string]Value{"OrderID": 103, "CustomerID": 1, "Amount": 220}),
									row(map[string]Value{"OrderID": 104, "CustomerID": 3, "Amount": 180}),
								},
							},
						},
					},
					{
						Explanation: "The main query then reads big_orders like any table and groups it by customer.",
						Query:       "WITH big_orders AS (\n  SELECT * FROM Orders WHERE Amount > 100\n)\nSELECT CustomerID, COUNT(*) AS BigOrders\nFROM big_orders\nGROUP BY CustomerID;",
						Tables: []Table{
							{
								Name:    "Result",
								Columns: []string{"CustomerID", "BigOrders"},
								Rows: []Row{
									row(map[string]Value{"CustomerID": 1, "BigOrders": 2}),
									row(map[string]Value{"CustomerID": 3, "BigOrders": 1}),
								},
							},
						},
					},
				},
			},
		},
	}
}

func windowTopic() Topic {
	return Topic{
		Name:        "Window Functions",
		Description: "Computes a value over a window of related rows without collapsing them. Every input row stays in the output.",
		Syntax:      "SELECT x, RANK() OVER (PARTITION BY g ORDER BY x DESC) FROM t;",
		UseCase:     "Per-group rankings and running totals where the detail rows must remain visible.",
		Examples: []Example{
			{
				Title: "Rank salaries inside departments",
				Steps: []Step{
					{
						Explanation: "The Employees table. Unlike GROUP BY, a window function will keep all five rows.",
						Query:       "SELECT Name, Department, Salary,\n  RANK() OVER (PARTITION BY Department ORDER BY Salary DESC) AS Rank\nFROM Employees;",
						Tables:      []Table{employeesTable()},
					},
					{
						Explanation: "Each row gains a Rank computed within its own department. The partitions never merge rows; they only scope the ranking.",
						Query:       "SELECT Name, Department, Salary,\n  RANK() OVER (PARTITION BY Department ORDER BY Salary DESC) AS Rank\nFROM Employees;",
						Tables: []Table{
							{
								Name:    "Result",
								Columns: []string{"Name", "Department", "Salary", "Rank"},
								Rows: []Row{
									row(map[string]Value{"Name": "Grace", "Department": "Engineering", "Salary": 95000, "Rank": 1}),
									row(map[string]Value{"Name": "Henry", "Department": "Engineering", "Salary": 85000, "Rank": 2}),
									row(map[string]Value{"Name": "Kara", "Department": "HR", "Salary": 55000, "Rank": 1}),
									row(map[string]Value{"Name": "Jack", "Department": "Sales", "Salary": 72000, "Rank": 1}),
									row(map[string]Value{"Name": "Irene", "Department": "Sales", "Salary": 60000, "Rank": 2}),
								},
							},
						},
					},
				},
			},
		},
	}
}
