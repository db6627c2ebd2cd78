package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"waiter/internal/domain/entity"
	"waiter/internal/errors"
	"waiter/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newOrdersCmd(dir configDirFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Create, list and advance orders",
	}
	cmd.AddCommand(
		newOrdersListCmd(dir),
		newOrdersCreateCmd(dir),
		newOrdersStatusCmd(dir),
	)

	return cmd
}

func newOrdersListCmd(dir configDirFunc) *cobra.Command {
	var (
		statuses []string
		table    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := buildFilter(statuses, table)
			if err != nil {
				return err
			}

			return run(cmd, dir, func(ctx context.Context, deps cliDeps) error {
				orders, err := deps.Orders.ListActiveOrders(ctx, filter)
				if err != nil {
					return errors.Wrap(err, "Failed to load active orders. Please try again.")
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderOrders(orders))

				return nil
			})
		},
	}
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "statuses to show (default Pending,Preparing,Ready)")
	cmd.Flags().StringVar(&table, "table", "", "only tables whose number contains this")

	return cmd
}

func buildFilter(statuses []string, table string) (usecase.OrderFilter, error) {
	filter := usecase.OrderFilter{TableQuery: strings.TrimSpace(table)}
	for _, raw := range statuses {
		status, ok := entity.ParseOrderStatus(raw)
		if !ok {
			return usecase.OrderFilter{}, errors.Errorf("unknown status %q", raw)
		}
		filter.Statuses = append(filter.Statuses, status)
	}

	return filter, nil
}

func newOrdersCreateCmd(dir configDirFunc) *cobra.Command {
	var (
		draft entity.OrderDraft
		items []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an order",
		Example: `  waiter orders create --table 4 --customer Sam \
    --item "Chicken Biryani:2:12.50" --item "Mango Lassi:1:3.75"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, raw := range items {
				item, err := parseItem(raw)
				if err != nil {
					return err
				}
				draft.Items = append(draft.Items, item)
			}

			return run(cmd, dir, func(ctx context.Context, deps cliDeps) error {
				order, err := deps.Orders.CreateOrder(ctx, draft)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderBill(order))

				return nil
			})
		},
	}
	cmd.Flags().IntVar(&draft.TableNumber, "table", 0, "table number")
	cmd.Flags().StringVar(&draft.CustomerName, "customer", "", "customer name")
	cmd.Flags().StringArrayVar(&items, "item", nil, "line item as name:quantity:price, repeatable")

	return cmd
}

// parseItem reads name:quantity:price. The name may itself contain colons.
func parseItem(raw string) (entity.OrderItem, error) {
	priceSep := strings.LastIndex(raw, ":")
	if priceSep < 0 {
		return entity.OrderItem{}, errors.Errorf("item %q is not name:quantity:price", raw)
	}
	qtySep := strings.LastIndex(raw[:priceSep], ":")
	if qtySep < 0 {
		return entity.OrderItem{}, errors.Errorf("item %q is not name:quantity:price", raw)
	}

	qty, err := strconv.Atoi(strings.TrimSpace(raw[qtySep+1 : priceSep]))
	if err != nil {
		return entity.OrderItem{}, errors.Errorf("item %q has an invalid quantity", raw)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(raw[priceSep+1:]))
	if err != nil {
		return entity.OrderItem{}, errors.Errorf("item %q has an invalid price", raw)
	}

	return entity.OrderItem{
		Name:     strings.TrimSpace(raw[:qtySep]),
		Quantity: qty,
		Price:    price,
	}, nil
}

func newOrdersStatusCmd(dir configDirFunc) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "status <order-id>",
		Short: "Move an order to a new status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			change := usecase.StatusChange{
				OrderID: args[0],
				From:    statusOrRaw(from),
				To:      statusOrRaw(to),
			}

			return run(cmd, dir, func(ctx context.Context, deps cliDeps) error {
				orders, err := deps.Orders.UpdateStatus(ctx, change, usecase.OrderFilter{})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderOrders(orders))

				return nil
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "current status, enables the forward-only check")
	cmd.Flags().StringVar(&to, "to", "", "new status: Pending, Preparing, Ready or Served")

	return cmd
}

// statusOrRaw normalizes case and leaves unknown values for the use case to reject.
func statusOrRaw(raw string) entity.OrderStatus {
	if status, ok := entity.ParseOrderStatus(raw); ok {
		return status
	}

	return entity.OrderStatus(strings.TrimSpace(raw))
}

func newBillCmd(dir configDirFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bill",
		Short: "Show and settle bills",
	}

	show := &cobra.Command{
		Use:   "show <order-id>",
		Short: "Show the bill of an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, dir, func(ctx context.Context, deps cliDeps) error {
				order, err := deps.Billing.LoadBill(ctx, args[0])
				if err != nil {
					return errors.Wrap(err, "Failed to load bill. Please try again.")
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderBill(order))

				return nil
			})
		},
	}

	var method, amount string
	pay := &cobra.Command{
		Use:   "pay <order-id>",
		Short: "Settle the bill of an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paid, err := decimal.NewFromString(strings.TrimSpace(amount))
			if err != nil {
				paid = decimal.Zero
			}

			return run(cmd, dir, func(ctx context.Context, deps cliDeps) error {
				order, err := deps.Billing.LoadBill(ctx, args[0])
				if err != nil {
					return errors.Wrap(err, "Failed to load bill. Please try again.")
				}
				receipt, err := deps.Billing.Pay(ctx, order, entity.PaymentMethod(method), paid)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderReceipt(receipt))

				return nil
			})
		},
	}
	pay.Flags().StringVar(&method, "method", string(entity.PaymentMethodCash), "Cash, Card or Mobile Banking")
	pay.Flags().StringVar(&amount, "amount", "", "amount handed over by the guest")

	cmd.AddCommand(show, pay)

	return cmd
}
