package domain

// Entity names a mutable platform entity in a mutation operation.
type Entity string

const (
	EntityCampaign         Entity = "campaign"
	EntityCampaignBudget   Entity = "campaign_budget"
	EntityAdGroup          Entity = "ad_group"
	EntityAdGroupAd        Entity = "ad_group_ad"
	EntityAdGroupCriterion Entity = "ad_group_criterion"
)

// Operation types supported in a mutation batch.
const (
	OpCreate = "create"
	OpUpdate = "update"
)

// MutateOperation is one entry of a mutation batch sent to the platform.
// Resource is the entity payload; its concrete type depends on Entity.
type MutateOperation struct {
	Entity    Entity
	Operation string
	Resource  any
}

// MutationBatch accumulates operations destined for a single atomic
// submission. Temporary resource names hand out negative placeholder
// identifiers so that an operation can reference a resource created
// earlier in the same batch; the platform resolves the placeholder to a
// real identifier at submission time.
type MutationBatch struct {
	customerID string
	nextTemp   int64
	ops        []MutateOperation
}

// NewMutationBatch starts an empty batch for the given customer.
func NewMutationBatch(customerID string) *MutationBatch {
	return &MutationBatch{customerID: customerID, nextTemp: -1}
}

// TempResourceName allocates a placeholder resource name of the given
// kind, unique within the batch.
func (b *MutationBatch) TempResourceName(kind ResourceKind) string {
	name := ResourceName(kind, b.customerID, b.nextTemp)
	b.nextTemp--
	return name
}

// Create appends a create operation.
func (b *MutationBatch) Create(entity Entity, resource any) {
	b.ops = append(b.ops, MutateOperation{Entity: entity, Operation: OpCreate, Resource: resource})
}

// Update appends an update operation.
func (b *MutationBatch) Update(entity Entity, resource any) {
	b.ops = append(b.ops, MutateOperation{Entity: entity, Operation: OpUpdate, Resource: resource})
}

// Operations returns the accumulated operations in submission order.
func (b *MutationBatch) Operations() []MutateOperation {
	return b.ops
}
