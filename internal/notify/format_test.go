package notify

import (
	"testing"

	"github.com/hctsai/lunchgo/internal/order"
)

func summaryOrders() []*order.Order {
	return []*order.Order{
		{UserName: "Amy", ItemName: "Chicken", BasePrice: 90, RiceLevel: order.RiceHalf, Quantity: 1, TotalPrice: 90},
		{UserName: "Bob", ItemName: "Chicken", BasePrice: 90, RiceLevel: order.RiceHalf, Quantity: 1, TotalPrice: 90},
		{UserName: "Cody", ItemName: "Pork", BasePrice: 80, RiceLevel: order.RiceFull, Quantity: 2, TotalPrice: 160},
	}
}

func TestReminder(t *testing.T) {
	got, err := Reminder("Friday bento", "2024-05-01T12:00:00+08:00", "g1", "http://app.local")
	if err != nil {
		t.Fatalf("Reminder failed: %v", err)
	}
	want := "🔔 結單提醒\n還有幾分鐘就要結單囉！\n\n團購：Friday bento\n結單時間：12:00\n\n👉 http://app.local/group/g1"
	if got != want {
		t.Errorf("Reminder() = %q, want %q", got, want)
	}
}

func TestReminderBadDeadline(t *testing.T) {
	if _, err := Reminder("x", "soonish", "g1", ""); err == nil {
		t.Error("expected an error for an unparseable deadline")
	}
}

func TestSummary(t *testing.T) {
	got, err := Summary("2024-05-01T12:00:00+08:00", summaryOrders())
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	want := "📋 訂單摘要\n12:00 結單\n\nChicken 飯半 $90\nAmy, Bob\nPork $80\nCody\n總金額：$340"
	if got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

func TestStatistics(t *testing.T) {
	got := Statistics("0970093839", summaryOrders())
	want := "店家電話：0970093839\nChicken 飯半*2\nPork*1"
	if got != want {
		t.Errorf("Statistics() = %q, want %q", got, want)
	}
}

func TestStatisticsWithoutPhone(t *testing.T) {
	got := Statistics("", summaryOrders())
	want := "Chicken 飯半*2\nPork*1"
	if got != want {
		t.Errorf("Statistics() = %q, want %q", got, want)
	}
}
