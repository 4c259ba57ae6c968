// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: homecrew/v1/homecrew.proto

package homecrewpb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Household struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name            string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	DefaultCurrency string                 `protobuf:"bytes,3,opt,name=default_currency,json=defaultCurrency,proto3" json:"default_currency,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       string                 `protobuf:"bytes,5,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Household) Reset() {
	*x = Household{}
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Household) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Household) ProtoMessage() {}

func (x *Household) ProtoReflect() protoreflect.Message {
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Household.ProtoReflect.Descriptor instead.
func (*Household) Descriptor() ([]byte, []int) {
	return file_homecrew_v1_homecrew_proto_rawDescGZIP(), []int{0}
}

func (x *Household) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Household) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Household) GetDefaultCurrency() string {
	if x != nil {
		return x.DefaultCurrency
	}
	return ""
}

func (x *Household) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Household) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Merchant struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	HouseholdId   string                 `protobuf:"bytes,2,opt,name=household_id,json=householdId,proto3" json:"household_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Merchant) Reset() {
	*x = Merchant{}
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Merchant) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Merchant) ProtoMessage() {}

func (x *Merchant) ProtoReflect() protoreflect.Message {
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Merchant.ProtoReflect.Descriptor instead.
func (*Merchant) Descriptor() ([]byte, []int) {
	return file_homecrew_v1_homecrew_proto_rawDescGZIP(), []int{1}
}

func (x *Merchant) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Merchant) GetHouseholdId() string {
	if x != nil {
		return x.HouseholdId
	}
	return ""
}

func (x *Merchant) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Merchant) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ExpenseItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Price         string                 `protobuf:"bytes,2,opt,name=price,proto3" json:"price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExpenseItem) Reset() {
	*x = ExpenseItem{}
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExpenseItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExpenseItem) ProtoMessage() {}

func (x *ExpenseItem) ProtoReflect() protoreflect.Message {
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExpenseItem.ProtoReflect.Descriptor instead.
func (*ExpenseItem) Descriptor() ([]byte, []int) {
	return file_homecrew_v1_homecrew_proto_rawDescGZIP(), []int{2}
}

func (x *ExpenseItem) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ExpenseItem) GetPrice() string {
	if x != nil {
		return x.Price
	}
	return ""
}

type Expense struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	HouseholdId   string                 `protobuf:"bytes,2,opt,name=household_id,json=householdId,proto3" json:"household_id,omitempty"`
	MerchantName  string                 `protobuf:"bytes,3,opt,name=merchant_name,json=merchantName,proto3" json:"merchant_name,omitempty"`
	TxDate        string                 `protobuf:"bytes,4,opt,name=tx_date,json=txDate,proto3" json:"tx_date,omitempty"`
	Total         string                 `protobuf:"bytes,5,opt,name=total,proto3" json:"total,omitempty"`
	CurrencyCode  string                 `protobuf:"bytes,6,opt,name=currency_code,json=currencyCode,proto3" json:"currency_code,omitempty"`
	Category      string                 `protobuf:"bytes,7,opt,name=category,proto3" json:"category,omitempty"`
	Confidence    float64                `protobuf:"fixed64,8,opt,name=confidence,proto3" json:"confidence,omitempty"`
	NeedsReview   bool                   `protobuf:"varint,9,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	LineItems     []*ExpenseItem         `protobuf:"bytes,10,rep,name=line_items,json=lineItems,proto3" json:"line_items,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,12,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Expense) Reset() {
	*x = Expense{}
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Expense) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Expense) ProtoMessage() {}

func (x *Expense) ProtoReflect() protoreflect.Message {
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Expense.ProtoReflect.Descriptor instead.
func (*Expense) Descriptor() ([]byte, []int) {
	return file_homecrew_v1_homecrew_proto_rawDescGZIP(), []int{3}
}

func (x *Expense) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Expense) GetHouseholdId() string {
	if x != nil {
		return x.HouseholdId
	}
	return ""
}

func (x *Expense) GetMerchantName() string {
	if x != nil {
		return x.MerchantName
	}
	return ""
}

func (x *Expense) GetTxDate() string {
	if x != nil {
		return x.TxDate
	}
	return ""
}

func (x *Expense) GetTotal() string {
	if x != nil {
		return x.Total
	}
	return ""
}

func (x *Expense) GetCurrencyCode() string {
	if x != nil {
		return x.CurrencyCode
	}
	return ""
}

func (x *Expense) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Expense) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Expense) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *Expense) GetLineItems() []*ExpenseItem {
	if x != nil {
		return x.LineItems
	}
	return nil
}

func (x *Expense) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Expense) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateHouseholdRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Name            string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	DefaultCurrency string                 `protobuf:"bytes,2,opt,name=default_currency,json=defaultCurrency,proto3" json:"default_currency,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CreateHouseholdRequest) Reset() {
	*x = CreateHouseholdRequest{}
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateHouseholdRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateHouseholdRequest) ProtoMessage() {}

func (x *CreateHouseholdRequest) ProtoReflect() protoreflect.Message {
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateHouseholdRequest.ProtoReflect.Descriptor instead.
func (*CreateHouseholdRequest) Descriptor() ([]byte, []int) {
	return file_homecrew_v1_homecrew_proto_rawDescGZIP(), []int{4}
}

func (x *CreateHouseholdRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateHouseholdRequest) GetDefaultCurrency() string {
	if x != nil {
		return x.DefaultCurrency
	}
	return ""
}

type CreateHouseholdResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Household     *Household             `protobuf:"bytes,1,opt,name=household,proto3" json:"household,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateHouseholdResponse) Reset() {
	*x = CreateHouseholdResponse{}
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateHouseholdResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateHouseholdResponse) ProtoMessage() {}

func (x *CreateHouseholdResponse) ProtoReflect() protoreflect.Message {
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateHouseholdResponse.ProtoReflect.Descriptor instead.
func (*CreateHouseholdResponse) Descriptor() ([]byte, []int) {
	return file_homecrew_v1_homecrew_proto_rawDescGZIP(), []int{5}
}

func (x *CreateHouseholdResponse) GetHousehold() *Household {
	if x != nil {
		return x.Household
	}
	return nil
}

type ListHouseholdsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListHouseholdsRequest) Reset() {
	*x = ListHouseholdsRequest{}
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListHouseholdsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListHouseholdsRequest) ProtoMessage() {}

func (x *ListHouseholdsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListHouseholdsRequest.ProtoReflect.Descriptor instead.
func (*ListHouseholdsRequest) Descriptor() ([]byte, []int) {
	return file_homecrew_v1_homecrew_proto_rawDescGZIP(), []int{6}
}

type ListHouseholdsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Households    []*Household           `protobuf:"bytes,1,rep,name=households,proto3" json:"households,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListHouseholdsResponse) Reset() {
	*x = ListHouseholdsResponse{}
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListHouseholdsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListHouseholdsResponse) ProtoMessage() {}

func (x *ListHouseholdsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListHouseholdsResponse.ProtoReflect.Descriptor instead.
func (*ListHouseholdsResponse) Descriptor() ([]byte, []int) {
	return file_homecrew_v1_homecrew_proto_rawDescGZIP(), []int{7}
}

func (x *ListHouseholdsResponse) GetHouseholds() []*Household {
	if x != nil {
		return x.Households
	}
	return nil
}

type ListMerchantsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	HouseholdId   string                 `protobuf:"bytes,1,opt,name=household_id,json=householdId,proto3" json:"household_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMerchantsRequest) Reset() {
	*x = ListMerchantsRequest{}
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMerchantsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMerchantsRequest) ProtoMessage() {}

func (x *ListMerchantsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMerchantsRequest.ProtoReflect.Descriptor instead.
func (*ListMerchantsRequest) Descriptor() ([]byte, []int) {
	return file_homecrew_v1_homecrew_proto_rawDescGZIP(), []int{8}
}

func (x *ListMerchantsRequest) GetHouseholdId() string {
	if x != nil {
		return x.HouseholdId
	}
	return ""
}

type ListMerchantsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Merchants     []*Merchant            `protobuf:"bytes,1,rep,name=merchants,proto3" json:"merchants,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMerchantsResponse) Reset() {
	*x = ListMerchantsResponse{}
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMerchantsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMerchantsResponse) ProtoMessage() {}

func (x *ListMerchantsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMerchantsResponse.ProtoReflect.Descriptor instead.
func (*ListMerchantsResponse) Descriptor() ([]byte, []int) {
	return file_homecrew_v1_homecrew_proto_rawDescGZIP(), []int{9}
}

func (x *ListMerchantsResponse) GetMerchants() []*Merchant {
	if x != nil {
		return x.Merchants
	}
	return nil
}

type ConfirmMerchantRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	HouseholdId   string                 `protobuf:"bytes,1,opt,name=household_id,json=householdId,proto3" json:"household_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmMerchantRequest) Reset() {
	*x = ConfirmMerchantRequest{}
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmMerchantRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmMerchantRequest) ProtoMessage() {}

func (x *ConfirmMerchantRequest) ProtoReflect() protoreflect.Message {
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmMerchantRequest.ProtoReflect.Descriptor instead.
func (*ConfirmMerchantRequest) Descriptor() ([]byte, []int) {
	return file_homecrew_v1_homecrew_proto_rawDescGZIP(), []int{10}
}

func (x *ConfirmMerchantRequest) GetHouseholdId() string {
	if x != nil {
		return x.HouseholdId
	}
	return ""
}

func (x *ConfirmMerchantRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type ConfirmMerchantResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Merchant      *Merchant              `protobuf:"bytes,1,opt,name=merchant,proto3" json:"merchant,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmMerchantResponse) Reset() {
	*x = ConfirmMerchantResponse{}
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmMerchantResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmMerchantResponse) ProtoMessage() {}

func (x *ConfirmMerchantResponse) ProtoReflect() protoreflect.Message {
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmMerchantResponse.ProtoReflect.Descriptor instead.
func (*ConfirmMerchantResponse) Descriptor() ([]byte, []int) {
	return file_homecrew_v1_homecrew_proto_rawDescGZIP(), []int{11}
}

func (x *ConfirmMerchantResponse) GetMerchant() *Merchant {
	if x != nil {
		return x.Merchant
	}
	return nil
}

type ScanReceiptRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	HouseholdId string                 `protobuf:"bytes,1,opt,name=household_id,json=householdId,proto3" json:"household_id,omitempty"`
	// Exactly one of image_path or raw_text should be set.
	ImagePath     string `protobuf:"bytes,2,opt,name=image_path,json=imagePath,proto3" json:"image_path,omitempty"`
	RawText       string `protobuf:"bytes,3,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanReceiptRequest) Reset() {
	*x = ScanReceiptRequest{}
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanReceiptRequest) ProtoMessage() {}

func (x *ScanReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanReceiptRequest.ProtoReflect.Descriptor instead.
func (*ScanReceiptRequest) Descriptor() ([]byte, []int) {
	return file_homecrew_v1_homecrew_proto_rawDescGZIP(), []int{12}
}

func (x *ScanReceiptRequest) GetHouseholdId() string {
	if x != nil {
		return x.HouseholdId
	}
	return ""
}

func (x *ScanReceiptRequest) GetImagePath() string {
	if x != nil {
		return x.ImagePath
	}
	return ""
}

func (x *ScanReceiptRequest) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

type ScanReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Expense       *Expense               `protobuf:"bytes,1,opt,name=expense,proto3" json:"expense,omitempty"`
	NeedsReview   bool                   `protobuf:"varint,2,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanReceiptResponse) Reset() {
	*x = ScanReceiptResponse{}
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanReceiptResponse) ProtoMessage() {}

func (x *ScanReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanReceiptResponse.ProtoReflect.Descriptor instead.
func (*ScanReceiptResponse) Descriptor() ([]byte, []int) {
	return file_homecrew_v1_homecrew_proto_rawDescGZIP(), []int{13}
}

func (x *ScanReceiptResponse) GetExpense() *Expense {
	if x != nil {
		return x.Expense
	}
	return nil
}

func (x *ScanReceiptResponse) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

type ListExpensesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	HouseholdId   string                 `protobuf:"bytes,1,opt,name=household_id,json=householdId,proto3" json:"household_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, inclusive
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, inclusive
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExpensesRequest) Reset() {
	*x = ListExpensesRequest{}
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExpensesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExpensesRequest) ProtoMessage() {}

func (x *ListExpensesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExpensesRequest.ProtoReflect.Descriptor instead.
func (*ListExpensesRequest) Descriptor() ([]byte, []int) {
	return file_homecrew_v1_homecrew_proto_rawDescGZIP(), []int{14}
}

func (x *ListExpensesRequest) GetHouseholdId() string {
	if x != nil {
		return x.HouseholdId
	}
	return ""
}

func (x *ListExpensesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListExpensesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListExpensesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Expenses      []*Expense             `protobuf:"bytes,1,rep,name=expenses,proto3" json:"expenses,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExpensesResponse) Reset() {
	*x = ListExpensesResponse{}
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExpensesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExpensesResponse) ProtoMessage() {}

func (x *ListExpensesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExpensesResponse.ProtoReflect.Descriptor instead.
func (*ListExpensesResponse) Descriptor() ([]byte, []int) {
	return file_homecrew_v1_homecrew_proto_rawDescGZIP(), []int{15}
}

func (x *ListExpensesResponse) GetExpenses() []*Expense {
	if x != nil {
		return x.Expenses
	}
	return nil
}

type ExportExpensesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	HouseholdId   string                 `protobuf:"bytes,1,opt,name=household_id,json=householdId,proto3" json:"household_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, inclusive
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, inclusive
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportExpensesRequest) Reset() {
	*x = ExportExpensesRequest{}
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportExpensesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportExpensesRequest) ProtoMessage() {}

func (x *ExportExpensesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportExpensesRequest.ProtoReflect.Descriptor instead.
func (*ExportExpensesRequest) Descriptor() ([]byte, []int) {
	return file_homecrew_v1_homecrew_proto_rawDescGZIP(), []int{16}
}

func (x *ExportExpensesRequest) GetHouseholdId() string {
	if x != nil {
		return x.HouseholdId
	}
	return ""
}

func (x *ExportExpensesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportExpensesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportExpensesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportExpensesResponse) Reset() {
	*x = ExportExpensesResponse{}
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportExpensesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportExpensesResponse) ProtoMessage() {}

func (x *ExportExpensesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_homecrew_v1_homecrew_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportExpensesResponse.ProtoReflect.Descriptor instead.
func (*ExportExpensesResponse) Descriptor() ([]byte, []int) {
	return file_homecrew_v1_homecrew_proto_rawDescGZIP(), []int{17}
}

func (x *ExportExpensesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_homecrew_v1_homecrew_proto protoreflect.FileDescriptor

const file_homecrew_v1_homecrew_proto_rawDesc = "" +
	"\n" +
	"\x1ahomecrew/v1/homecrew.proto\x12\vhomecrew.v1\"\x98\x01\n" +
	"\tHousehold\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12)\n" +
	"\x10default_currency\x18\x03 \x01(\tR\x0fdefaultCurrency\x12\x1d\n" +
	"\n" +
	"created_at\x18\x04 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x05 \x01(\tR\tupdatedAt\"p\n" +
	"\bMerchant\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fhousehold_id\x18\x02 \x01(\tR\vhouseholdId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x1d\n" +
	"\n" +
	"created_at\x18\x04 \x01(\tR\tcreatedAt\"7\n" +
	"\vExpenseItem\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05price\x18\x02 \x01(\tR\x05price\"\x8b\x03\n" +
	"\aExpense\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fhousehold_id\x18\x02 \x01(\tR\vhouseholdId\x12#\n" +
	"\rmerchant_name\x18\x03 \x01(\tR\fmerchantName\x12\x17\n" +
	"\atx_date\x18\x04 \x01(\tR\x06txDate\x12\x14\n" +
	"\x05total\x18\x05 \x01(\tR\x05total\x12#\n" +
	"\rcurrency_code\x18\x06 \x01(\tR\fcurrencyCode\x12\x1a\n" +
	"\bcategory\x18\a \x01(\tR\bcategory\x12\x1e\n" +
	"\n" +
	"confidence\x18\b \x01(\x01R\n" +
	"confidence\x12!\n" +
	"\fneeds_review\x18\t \x01(\bR\vneedsReview\x127\n" +
	"\n" +
	"line_items\x18\n" +
	" \x03(\v2\x18.homecrew.v1.ExpenseItemR\tlineItems\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\f \x01(\tR\tupdatedAt\"W\n" +
	"\x16CreateHouseholdRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12)\n" +
	"\x10default_currency\x18\x02 \x01(\tR\x0fdefaultCurrency\"O\n" +
	"\x17CreateHouseholdResponse\x124\n" +
	"\thousehold\x18\x01 \x01(\v2\x16.homecrew.v1.HouseholdR\thousehold\"\x17\n" +
	"\x15ListHouseholdsRequest\"P\n" +
	"\x16ListHouseholdsResponse\x126\n" +
	"\n" +
	"households\x18\x01 \x03(\v2\x16.homecrew.v1.HouseholdR\n" +
	"households\"9\n" +
	"\x14ListMerchantsRequest\x12!\n" +
	"\fhousehold_id\x18\x01 \x01(\tR\vhouseholdId\"L\n" +
	"\x15ListMerchantsResponse\x123\n" +
	"\tmerchants\x18\x01 \x03(\v2\x15.homecrew.v1.MerchantR\tmerchants\"O\n" +
	"\x16ConfirmMerchantRequest\x12!\n" +
	"\fhousehold_id\x18\x01 \x01(\tR\vhouseholdId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"L\n" +
	"\x17ConfirmMerchantResponse\x121\n" +
	"\bmerchant\x18\x01 \x01(\v2\x15.homecrew.v1.MerchantR\bmerchant\"q\n" +
	"\x12ScanReceiptRequest\x12!\n" +
	"\fhousehold_id\x18\x01 \x01(\tR\vhouseholdId\x12\x1d\n" +
	"\n" +
	"image_path\x18\x02 \x01(\tR\timagePath\x12\x19\n" +
	"\braw_text\x18\x03 \x01(\tR\arawText\"h\n" +
	"\x13ScanReceiptResponse\x12.\n" +
	"\aexpense\x18\x01 \x01(\v2\x14.homecrew.v1.ExpenseR\aexpense\x12!\n" +
	"\fneeds_review\x18\x02 \x01(\bR\vneedsReview\"n\n" +
	"\x13ListExpensesRequest\x12!\n" +
	"\fhousehold_id\x18\x01 \x01(\tR\vhouseholdId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"H\n" +
	"\x14ListExpensesResponse\x120\n" +
	"\bexpenses\x18\x01 \x03(\v2\x14.homecrew.v1.ExpenseR\bexpenses\"p\n" +
	"\x15ExportExpensesRequest\x12!\n" +
	"\fhousehold_id\x18\x01 \x01(\tR\vhouseholdId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\",\n" +
	"\x16ExportExpensesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xcc\x01\n" +
	"\x11HouseholdsService\x12\\\n" +
	"\x0fCreateHousehold\x12#.homecrew.v1.CreateHouseholdRequest\x1a$.homecrew.v1.CreateHouseholdResponse\x12Y\n" +
	"\x0eListHouseholds\x12\".homecrew.v1.ListHouseholdsRequest\x1a#.homecrew.v1.ListHouseholdsResponse2\xc8\x01\n" +
	"\x10MerchantsService\x12V\n" +
	"\rListMerchants\x12!.homecrew.v1.ListMerchantsRequest\x1a\".homecrew.v1.ListMerchantsResponse\x12\\\n" +
	"\x0fConfirmMerchant\x12#.homecrew.v1.ConfirmMerchantRequest\x1a$.homecrew.v1.ConfirmMerchantResponse2\xb8\x01\n" +
	"\x0fExpensesService\x12P\n" +
	"\vScanReceipt\x12\x1f.homecrew.v1.ScanReceiptRequest\x1a .homecrew.v1.ScanReceiptResponse\x12S\n" +
	"\fListExpenses\x12 .homecrew.v1.ListExpensesRequest\x1a!.homecrew.v1.ListExpensesResponse2j\n" +
	"\rExportService\x12Y\n" +
	"\x0eExportExpenses\x12\".homecrew.v1.ExportExpensesRequest\x1a#.homecrew.v1.ExportExpensesResponseBGZEgithub.com/homecrew/homecrew-backend/gen/proto/homecrew/v1;homecrewpbb\x06proto3"

var (
	file_homecrew_v1_homecrew_proto_rawDescOnce sync.Once
	file_homecrew_v1_homecrew_proto_rawDescData []byte
)

func file_homecrew_v1_homecrew_proto_rawDescGZIP() []byte {
	file_homecrew_v1_homecrew_proto_rawDescOnce.Do(func() {
		file_homecrew_v1_homecrew_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_homecrew_v1_homecrew_proto_rawDesc), len(file_homecrew_v1_homecrew_proto_rawDesc)))
	})
	return file_homecrew_v1_homecrew_proto_rawDescData
}

var file_homecrew_v1_homecrew_proto_msgTypes = make([]protoimpl.MessageInfo, 18)
var file_homecrew_v1_homecrew_proto_goTypes = []any{
	(*Household)(nil),               // 0: homecrew.v1.Household
	(*Merchant)(nil),                // 1: homecrew.v1.Merchant
	(*ExpenseItem)(nil),             // 2: homecrew.v1.ExpenseItem
	(*Expense)(nil),                 // 3: homecrew.v1.Expense
	(*CreateHouseholdRequest)(nil),  // 4: homecrew.v1.CreateHouseholdRequest
	(*CreateHouseholdResponse)(nil), // 5: homecrew.v1.CreateHouseholdResponse
	(*ListHouseholdsRequest)(nil),   // 6: homecrew.v1.ListHouseholdsRequest
	(*ListHouseholdsResponse)(nil),  // 7: homecrew.v1.ListHouseholdsResponse
	(*ListMerchantsRequest)(nil),    // 8: homecrew.v1.ListMerchantsRequest
	(*ListMerchantsResponse)(nil),   // 9: homecrew.v1.ListMerchantsResponse
	(*ConfirmMerchantRequest)(nil),  // 10: homecrew.v1.ConfirmMerchantRequest
	(*ConfirmMerchantResponse)(nil), // 11: homecrew.v1.ConfirmMerchantResponse
	(*ScanReceiptRequest)(nil),      // 12: homecrew.v1.ScanReceiptRequest
	(*ScanReceiptResponse)(nil),     // 13: homecrew.v1.ScanReceiptResponse
	(*ListExpensesRequest)(nil),     // 14: homecrew.v1.ListExpensesRequest
	(*ListExpensesResponse)(nil),    // 15: homecrew.v1.ListExpensesResponse
	(*ExportExpensesRequest)(nil),   // 16: homecrew.v1.ExportExpensesRequest
	(*ExportExpensesResponse)(nil),  // 17: homecrew.v1.ExportExpensesResponse
}
var file_homecrew_v1_homecrew_proto_depIdxs = []int32{
	2,  // 0: homecrew.v1.Expense.line_items:type_name -> homecrew.v1.ExpenseItem
	0,  // 1: homecrew.v1.CreateHouseholdResponse.household:type_name -> homecrew.v1.Household
	0,  // 2: homecrew.v1.ListHouseholdsResponse.households:type_name -> homecrew.v1.Household
	1,  // 3: homecrew.v1.ListMerchantsResponse.merchants:type_name -> homecrew.v1.Merchant
	1,  // 4: homecrew.v1.ConfirmMerchantResponse.merchant:type_name -> homecrew.v1.Merchant
	3,  // 5: homecrew.v1.ScanReceiptResponse.expense:type_name -> homecrew.v1.Expense
	3,  // 6: homecrew.v1.ListExpensesResponse.expenses:type_name -> homecrew.v1.Expense
	4,  // 7: homecrew.v1.HouseholdsService.CreateHousehold:input_type -> homecrew.v1.CreateHouseholdRequest
	6,  // 8: homecrew.v1.HouseholdsService.ListHouseholds:input_type -> homecrew.v1.ListHouseholdsRequest
	8,  // 9: homecrew.v1.MerchantsService.ListMerchants:input_type -> homecrew.v1.ListMerchantsRequest
	10, // 10: homecrew.v1.MerchantsService.ConfirmMerchant:input_type -> homecrew.v1.ConfirmMerchantRequest
	12, // 11: homecrew.v1.ExpensesService.ScanReceipt:input_type -> homecrew.v1.ScanReceiptRequest
	14, // 12: homecrew.v1.ExpensesService.ListExpenses:input_type -> homecrew.v1.ListExpensesRequest
	16, // 13: homecrew.v1.ExportService.ExportExpenses:input_type -> homecrew.v1.ExportExpensesRequest
	5,  // 14: homecrew.v1.HouseholdsService.CreateHousehold:output_type -> homecrew.v1.CreateHouseholdResponse
	7,  // 15: homecrew.v1.HouseholdsService.ListHouseholds:output_type -> homecrew.v1.ListHouseholdsResponse
	9,  // 16: homecrew.v1.MerchantsService.ListMerchants:output_type -> homecrew.v1.ListMerchantsResponse
	11, // 17: homecrew.v1.MerchantsService.ConfirmMerchant:output_type -> homecrew.v1.ConfirmMerchantResponse
	13, // 18: homecrew.v1.ExpensesService.ScanReceipt:output_type -> homecrew.v1.ScanReceiptResponse
	15, // 19: homecrew.v1.ExpensesService.ListExpenses:output_type -> homecrew.v1.ListExpensesResponse
	17, // 20: homecrew.v1.ExportService.ExportExpenses:output_type -> homecrew.v1.ExportExpensesResponse
	14, // [14:21] is the sub-list for method output_type
	7,  // [7:14] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_homecrew_v1_homecrew_proto_init() }
func file_homecrew_v1_homecrew_proto_init() {
	if File_homecrew_v1_homecrew_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_homecrew_v1_homecrew_proto_rawDesc), len(file_homecrew_v1_homecrew_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   18,
			NumExtensions: 0,
			NumServices:   4,
		},
		GoTypes:           file_homecrew_v1_homecrew_proto_goTypes,
		DependencyIndexes: file_homecrew_v1_homecrew_proto_depIdxs,
		MessageInfos:      file_homecrew_v1_homecrew_proto_msgTypes,
	}.Build()
	File_homecrew_v1_homecrew_proto = out.File
	file_homecrew_v1_homecrew_proto_goTypes = nil
	file_homecrew_v1_homecrew_proto_depIdxs = nil
}
