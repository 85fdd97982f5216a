package notify

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hctsai/lunchgo/internal/localtime"
	"github.com/hctsai/lunchgo/internal/order"
)

// Reminder builds the pre-deadline reminder message.
func Reminder(groupName, deadline, groupID, appURL string) (string, error) {
	t, err := localtime.ParseDeadline(deadline)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("🔔 結單提醒\n還有幾分鐘就要結單囉！\n\n團購：%s\n結單時間：%s\n\n👉 %s/group/%s",
		groupName, t.In(localtime.Location).Format("15:04"), appURL, groupID), nil
}

// Summary builds the post-deadline order summary: orders grouped by
// item+rice-label with price and participant names, plus the total amount.
func Summary(deadline string, orders []*order.Order) (string, error) {
	t, err := localtime.ParseDeadline(deadline)
	if err != nil {
		return "", err
	}

	grouped := groupByItem(orders)
	var sb strings.Builder
	for _, key := range sortedKeys(grouped) {
		itemOrders := grouped[key]
		names := make([]string, 0, len(itemOrders))
		for _, o := range itemOrders {
			names = append(names, o.UserName)
		}
		// Same item and rice level share one price; the first order's is
		// representative.
		fmt.Fprintf(&sb, "%s $%d\n%s\n", key, itemOrders[0].BasePrice, strings.Join(names, ", "))
	}

	total := 0
	for _, o := range orders {
		total += o.TotalPrice
	}

	return fmt.Sprintf("📋 訂單摘要\n%s 結單\n\n%s\n總金額：$%d",
		t.In(localtime.Location).Format("15:04"), strings.TrimRight(sb.String(), "\n"), total), nil
}

// Statistics builds the per-item order counts for calling in the order,
// prefixed with the restaurant phone when one is known.
func Statistics(restaurantPhone string, orders []*order.Order) string {
	counts := make(map[string]int)
	for _, o := range orders {
		counts[o.ItemKey()]++
	}

	var sb strings.Builder
	if strings.TrimSpace(restaurantPhone) != "" {
		fmt.Fprintf(&sb, "店家電話：%s\n", restaurantPhone)
	}

	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(&sb, "%s*%d\n", key, counts[key])
	}

	return strings.TrimRight(sb.String(), "\n")
}

func groupByItem(orders []*order.Order) map[string][]*order.Order {
	grouped := make(map[string][]*order.Order)
	for _, o := range orders {
		key := o.ItemKey()
		grouped[key] = append(grouped[key], o)
	}
	return grouped
}

func sortedKeys(m map[string][]*order.Order) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
