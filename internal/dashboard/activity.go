package dashboard

import (
	"sort"

	"github.com/CarlinQuentin/property-manager/internal/utils"
)

const dateLayout = "2006-01-02"

// MergeActivity flattens the five recent-row snapshots into one feed:
// tag each row, concatenate in a fixed kind order, stable-sort newest first,
// keep the top 10.
//
// Each kind arrives pre-truncated to its own top 10, so a burst of activity
// in one kind can push genuinely newer rows of another kind out of its
// source snapshot before the merge ever sees them. That approximation is
// intentional; the feed is a pulse, not an audit log.
func MergeActivity(snap Snapshot) []ActivityItem {
	items := make([]ActivityItem, 0,
		len(snap.RecentPayments)+len(snap.RecentLeases)+len(snap.RecentTenants)+
			len(snap.RecentProperties)+len(snap.RecentUnits))

	for _, p := range snap.RecentPayments {
		if p == nil {
			continue
		}
		items = append(items, ActivityItem{
			Kind:  KindPayment,
			ID:    p.PaymentID,
			At:    p.CreatedAt,
			Label: "Payment received " + utils.FormatCents(p.AmountCents),
			Sub:   p.TenantName() + " • " + p.PropertyName + " • " + p.UnitLabel,
		})
	}
	for _, l := range snap.RecentLeases {
		if l == nil {
			continue
		}
		items = append(items, ActivityItem{
			Kind:  KindLease,
			ID:    l.LeaseID,
			At:    l.CreatedAt,
			Label: "Lease created • " + l.TenantName(),
			Sub:   l.PropertyName + " • " + l.UnitLabel + " • Starts " + l.StartDate.Format(dateLayout),
		})
	}
	for _, t := range snap.RecentTenants {
		if t == nil {
			continue
		}
		items = append(items, ActivityItem{
			Kind:  KindTenant,
			ID:    t.ID,
			At:    t.CreatedAt,
			Label: "Tenant added • " + t.FullName(),
		})
	}
	for _, p := range snap.RecentProperties {
		if p == nil {
			continue
		}
		items = append(items, ActivityItem{
			Kind:  KindProperty,
			ID:    p.ID,
			At:    p.CreatedAt,
			Label: "Property added • " + p.Name,
		})
	}
	for _, u := range snap.RecentUnits {
		if u == nil {
			continue
		}
		items = append(items, ActivityItem{
			Kind:  KindUnit,
			ID:    u.ID,
			At:    u.CreatedAt,
			Label: "Unit added • " + u.Label,
			Sub:   u.PropertyName,
		})
	}

	// Stable: equal timestamps keep the concatenation order above.
	sort.SliceStable(items, func(i, j int) bool {
		return items[j].At.Before(items[i].At)
	})
	if len(items) > feedLimit {
		items = items[:feedLimit]
	}
	return items
}
