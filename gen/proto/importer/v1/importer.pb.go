// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: importer/v1/importer.proto

package importerpb

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

type ImportWorkbookRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Workbook      []byte                 `protobuf:"bytes,1,opt,name=workbook,proto3" json:"workbook,omitempty"`
	Sheet         string                 `protobuf:"bytes,2,opt,name=sheet,proto3" json:"sheet,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportWorkbookRequest) Reset() {
	*x = ImportWorkbookRequest{}
	mi := &file_importer_v1_importer_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportWorkbookRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportWorkbookRequest) ProtoMessage() {}

func (x *ImportWorkbookRequest) ProtoReflect() protoreflect.Message {
	mi := &file_importer_v1_importer_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportWorkbookRequest.ProtoReflect.Descriptor instead.
func (*ImportWorkbookRequest) Descriptor() ([]byte, []int) {
	return file_importer_v1_importer_proto_rawDescGZIP(), []int{0}
}

func (x *ImportWorkbookRequest) GetWorkbook() []byte {
	if x != nil {
		return x.Workbook
	}
	return nil
}

func (x *ImportWorkbookRequest) GetSheet() string {
	if x != nil {
		return x.Sheet
	}
	return ""
}

type ImportWorkbookResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Stats         *ImportStats           `protobuf:"bytes,1,opt,name=stats,proto3" json:"stats,omitempty"`
	ReportXlsx    []byte                 `protobuf:"bytes,2,opt,name=report_xlsx,json=reportXlsx,proto3" json:"report_xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportWorkbookResponse) Reset() {
	*x = ImportWorkbookResponse{}
	mi := &file_importer_v1_importer_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportWorkbookResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportWorkbookResponse) ProtoMessage() {}

func (x *ImportWorkbookResponse) ProtoReflect() protoreflect.Message {
	mi := &file_importer_v1_importer_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportWorkbookResponse.ProtoReflect.Descriptor instead.
func (*ImportWorkbookResponse) Descriptor() ([]byte, []int) {
	return file_importer_v1_importer_proto_rawDescGZIP(), []int{1}
}

func (x *ImportWorkbookResponse) GetStats() *ImportStats {
	if x != nil {
		return x.Stats
	}
	return nil
}

func (x *ImportWorkbookResponse) GetReportXlsx() []byte {
	if x != nil {
		return x.ReportXlsx
	}
	return nil
}

type StartImportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Workbook      []byte                 `protobuf:"bytes,1,opt,name=workbook,proto3" json:"workbook,omitempty"`
	Sheet         string                 `protobuf:"bytes,2,opt,name=sheet,proto3" json:"sheet,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartImportRequest) Reset() {
	*x = StartImportRequest{}
	mi := &file_importer_v1_importer_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartImportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartImportRequest) ProtoMessage() {}

func (x *StartImportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_importer_v1_importer_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartImportRequest.ProtoReflect.Descriptor instead.
func (*StartImportRequest) Descriptor() ([]byte, []int) {
	return file_importer_v1_importer_proto_rawDescGZIP(), []int{2}
}

func (x *StartImportRequest) GetWorkbook() []byte {
	if x != nil {
		return x.Workbook
	}
	return nil
}

func (x *StartImportRequest) GetSheet() string {
	if x != nil {
		return x.Sheet
	}
	return ""
}

type StartImportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartImportResponse) Reset() {
	*x = StartImportResponse{}
	mi := &file_importer_v1_importer_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartImportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartImportResponse) ProtoMessage() {}

func (x *StartImportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_importer_v1_importer_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartImportResponse.ProtoReflect.Descriptor instead.
func (*StartImportResponse) Descriptor() ([]byte, []int) {
	return file_importer_v1_importer_proto_rawDescGZIP(), []int{3}
}

func (x *StartImportResponse) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

type GetImportStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetImportStatusRequest) Reset() {
	*x = GetImportStatusRequest{}
	mi := &file_importer_v1_importer_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetImportStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetImportStatusRequest) ProtoMessage() {}

func (x *GetImportStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_importer_v1_importer_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetImportStatusRequest.ProtoReflect.Descriptor instead.
func (*GetImportStatusRequest) Descriptor() ([]byte, []int) {
	return file_importer_v1_importer_proto_rawDescGZIP(), []int{4}
}

func (x *GetImportStatusRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

type GetImportStatusResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// One of: pending, running, done, failed.
	State         string       `protobuf:"bytes,1,opt,name=state,proto3" json:"state,omitempty"`
	Stats         *ImportStats `protobuf:"bytes,2,opt,name=stats,proto3" json:"stats,omitempty"`
	Error         string       `protobuf:"bytes,3,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetImportStatusResponse) Reset() {
	*x = GetImportStatusResponse{}
	mi := &file_importer_v1_importer_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetImportStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetImportStatusResponse) ProtoMessage() {}

func (x *GetImportStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_importer_v1_importer_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetImportStatusResponse.ProtoReflect.Descriptor instead.
func (*GetImportStatusResponse) Descriptor() ([]byte, []int) {
	return file_importer_v1_importer_proto_rawDescGZIP(), []int{5}
}

func (x *GetImportStatusResponse) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *GetImportStatusResponse) GetStats() *ImportStats {
	if x != nil {
		return x.Stats
	}
	return nil
}

func (x *GetImportStatusResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type SyncWorkbookRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Workbook      []byte                 `protobuf:"bytes,1,opt,name=workbook,proto3" json:"workbook,omitempty"`
	Sheet         string                 `protobuf:"bytes,2,opt,name=sheet,proto3" json:"sheet,omitempty"`
	DryRun        bool                   `protobuf:"varint,3,opt,name=dry_run,json=dryRun,proto3" json:"dry_run,omitempty"`
	Limit         int32                  `protobuf:"varint,4,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SyncWorkbookRequest) Reset() {
	*x = SyncWorkbookRequest{}
	mi := &file_importer_v1_importer_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SyncWorkbookRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SyncWorkbookRequest) ProtoMessage() {}

func (x *SyncWorkbookRequest) ProtoReflect() protoreflect.Message {
	mi := &file_importer_v1_importer_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SyncWorkbookRequest.ProtoReflect.Descriptor instead.
func (*SyncWorkbookRequest) Descriptor() ([]byte, []int) {
	return file_importer_v1_importer_proto_rawDescGZIP(), []int{6}
}

func (x *SyncWorkbookRequest) GetWorkbook() []byte {
	if x != nil {
		return x.Workbook
	}
	return nil
}

func (x *SyncWorkbookRequest) GetSheet() string {
	if x != nil {
		return x.Sheet
	}
	return ""
}

func (x *SyncWorkbookRequest) GetDryRun() bool {
	if x != nil {
		return x.DryRun
	}
	return false
}

func (x *SyncWorkbookRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type SyncWorkbookResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Stats         *SyncStats             `protobuf:"bytes,1,opt,name=stats,proto3" json:"stats,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SyncWorkbookResponse) Reset() {
	*x = SyncWorkbookResponse{}
	mi := &file_importer_v1_importer_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SyncWorkbookResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SyncWorkbookResponse) ProtoMessage() {}

func (x *SyncWorkbookResponse) ProtoReflect() protoreflect.Message {
	mi := &file_importer_v1_importer_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SyncWorkbookResponse.ProtoReflect.Descriptor instead.
func (*SyncWorkbookResponse) Descriptor() ([]byte, []int) {
	return file_importer_v1_importer_proto_rawDescGZIP(), []int{7}
}

func (x *SyncWorkbookResponse) GetStats() *SyncStats {
	if x != nil {
		return x.Stats
	}
	return nil
}

type RelinkLogosRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DryRun        bool                   `protobuf:"varint,1,opt,name=dry_run,json=dryRun,proto3" json:"dry_run,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RelinkLogosRequest) Reset() {
	*x = RelinkLogosRequest{}
	mi := &file_importer_v1_importer_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RelinkLogosRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RelinkLogosRequest) ProtoMessage() {}

func (x *RelinkLogosRequest) ProtoReflect() protoreflect.Message {
	mi := &file_importer_v1_importer_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RelinkLogosRequest.ProtoReflect.Descriptor instead.
func (*RelinkLogosRequest) Descriptor() ([]byte, []int) {
	return file_importer_v1_importer_proto_rawDescGZIP(), []int{8}
}

func (x *RelinkLogosRequest) GetDryRun() bool {
	if x != nil {
		return x.DryRun
	}
	return false
}

type RelinkLogosResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Stats         *RelinkStats           `protobuf:"bytes,1,opt,name=stats,proto3" json:"stats,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RelinkLogosResponse) Reset() {
	*x = RelinkLogosResponse{}
	mi := &file_importer_v1_importer_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RelinkLogosResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RelinkLogosResponse) ProtoMessage() {}

func (x *RelinkLogosResponse) ProtoReflect() protoreflect.Message {
	mi := &file_importer_v1_importer_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RelinkLogosResponse.ProtoReflect.Descriptor instead.
func (*RelinkLogosResponse) Descriptor() ([]byte, []int) {
	return file_importer_v1_importer_proto_rawDescGZIP(), []int{9}
}

func (x *RelinkLogosResponse) GetStats() *RelinkStats {
	if x != nil {
		return x.Stats
	}
	return nil
}

type ListRegistryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRegistryRequest) Reset() {
	*x = ListRegistryRequest{}
	mi := &file_importer_v1_importer_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRegistryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRegistryRequest) ProtoMessage() {}

func (x *ListRegistryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_importer_v1_importer_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRegistryRequest.ProtoReflect.Descriptor instead.
func (*ListRegistryRequest) Descriptor() ([]byte, []int) {
	return file_importer_v1_importer_proto_rawDescGZIP(), []int{10}
}

type ListRegistryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Institutions  []string               `protobuf:"bytes,1,rep,name=institutions,proto3" json:"institutions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRegistryResponse) Reset() {
	*x = ListRegistryResponse{}
	mi := &file_importer_v1_importer_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRegistryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRegistryResponse) ProtoMessage() {}

func (x *ListRegistryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_importer_v1_importer_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRegistryResponse.ProtoReflect.Descriptor instead.
func (*ListRegistryResponse) Descriptor() ([]byte, []int) {
	return file_importer_v1_importer_proto_rawDescGZIP(), []int{11}
}

func (x *ListRegistryResponse) GetInstitutions() []string {
	if x != nil {
		return x.Institutions
	}
	return nil
}

type DeleteItemRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ItemId        string                 `protobuf:"bytes,1,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteItemRequest) Reset() {
	*x = DeleteItemRequest{}
	mi := &file_importer_v1_importer_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteItemRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteItemRequest) ProtoMessage() {}

func (x *DeleteItemRequest) ProtoReflect() protoreflect.Message {
	mi := &file_importer_v1_importer_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteItemRequest.ProtoReflect.Descriptor instead.
func (*DeleteItemRequest) Descriptor() ([]byte, []int) {
	return file_importer_v1_importer_proto_rawDescGZIP(), []int{12}
}

func (x *DeleteItemRequest) GetItemId() string {
	if x != nil {
		return x.ItemId
	}
	return ""
}

type DeleteItemResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteItemResponse) Reset() {
	*x = DeleteItemResponse{}
	mi := &file_importer_v1_importer_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteItemResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteItemResponse) ProtoMessage() {}

func (x *DeleteItemResponse) ProtoReflect() protoreflect.Message {
	mi := &file_importer_v1_importer_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteItemResponse.ProtoReflect.Descriptor instead.
func (*DeleteItemResponse) Descriptor() ([]byte, []int) {
	return file_importer_v1_importer_proto_rawDescGZIP(), []int{13}
}

type ImportStats struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	Total               int32                  `protobuf:"varint,1,opt,name=total,proto3" json:"total,omitempty"`
	Processed           int32                  `protobuf:"varint,2,opt,name=processed,proto3" json:"processed,omitempty"`
	SkippedNotRelevant  int32                  `protobuf:"varint,3,opt,name=skipped_not_relevant,json=skippedNotRelevant,proto3" json:"skipped_not_relevant,omitempty"`
	SkippedExists       int32                  `protobuf:"varint,4,opt,name=skipped_exists,json=skippedExists,proto3" json:"skipped_exists,omitempty"`
	SkippedEmptyTitle   int32                  `protobuf:"varint,5,opt,name=skipped_empty_title,json=skippedEmptyTitle,proto3" json:"skipped_empty_title,omitempty"`
	InvalidFormat       int32                  `protobuf:"varint,6,opt,name=invalid_format,json=invalidFormat,proto3" json:"invalid_format,omitempty"`
	Errors              int32                  `protobuf:"varint,7,opt,name=errors,proto3" json:"errors,omitempty"`
	MatchedInstitutions int32                  `protobuf:"varint,8,opt,name=matched_institutions,json=matchedInstitutions,proto3" json:"matched_institutions,omitempty"`
	UnmappedByKind      map[string]int32       `protobuf:"bytes,9,rep,name=unmapped_by_kind,json=unmappedByKind,proto3" json:"unmapped_by_kind,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *ImportStats) Reset() {
	*x = ImportStats{}
	mi := &file_importer_v1_importer_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportStats) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportStats) ProtoMessage() {}

func (x *ImportStats) ProtoReflect() protoreflect.Message {
	mi := &file_importer_v1_importer_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportStats.ProtoReflect.Descriptor instead.
func (*ImportStats) Descriptor() ([]byte, []int) {
	return file_importer_v1_importer_proto_rawDescGZIP(), []int{14}
}

func (x *ImportStats) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *ImportStats) GetProcessed() int32 {
	if x != nil {
		return x.Processed
	}
	return 0
}

func (x *ImportStats) GetSkippedNotRelevant() int32 {
	if x != nil {
		return x.SkippedNotRelevant
	}
	return 0
}

func (x *ImportStats) GetSkippedExists() int32 {
	if x != nil {
		return x.SkippedExists
	}
	return 0
}

func (x *ImportStats) GetSkippedEmptyTitle() int32 {
	if x != nil {
		return x.SkippedEmptyTitle
	}
	return 0
}

func (x *ImportStats) GetInvalidFormat() int32 {
	if x != nil {
		return x.InvalidFormat
	}
	return 0
}

func (x *ImportStats) GetErrors() int32 {
	if x != nil {
		return x.Errors
	}
	return 0
}

func (x *ImportStats) GetMatchedInstitutions() int32 {
	if x != nil {
		return x.MatchedInstitutions
	}
	return 0
}

func (x *ImportStats) GetUnmappedByKind() map[string]int32 {
	if x != nil {
		return x.UnmappedByKind
	}
	return nil
}

type SyncStats struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TotalRows     int32                  `protobuf:"varint,1,opt,name=total_rows,json=totalRows,proto3" json:"total_rows,omitempty"`
	Valid         int32                  `protobuf:"varint,2,opt,name=valid,proto3" json:"valid,omitempty"`
	InvalidFormat int32                  `protobuf:"varint,3,opt,name=invalid_format,json=invalidFormat,proto3" json:"invalid_format,omitempty"`
	Created       int32                  `protobuf:"varint,4,opt,name=created,proto3" json:"created,omitempty"`
	Updated       int32                  `protobuf:"varint,5,opt,name=updated,proto3" json:"updated,omitempty"`
	Skipped       int32                  `protobuf:"varint,6,opt,name=skipped,proto3" json:"skipped,omitempty"`
	NewReferences map[string]int32       `protobuf:"bytes,7,rep,name=new_references,json=newReferences,proto3" json:"new_references,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	Errors        int32                  `protobuf:"varint,8,opt,name=errors,proto3" json:"errors,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SyncStats) Reset() {
	*x = SyncStats{}
	mi := &file_importer_v1_importer_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SyncStats) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SyncStats) ProtoMessage() {}

func (x *SyncStats) ProtoReflect() protoreflect.Message {
	mi := &file_importer_v1_importer_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SyncStats.ProtoReflect.Descriptor instead.
func (*SyncStats) Descriptor() ([]byte, []int) {
	return file_importer_v1_importer_proto_rawDescGZIP(), []int{15}
}

func (x *SyncStats) GetTotalRows() int32 {
	if x != nil {
		return x.TotalRows
	}
	return 0
}

func (x *SyncStats) GetValid() int32 {
	if x != nil {
		return x.Valid
	}
	return 0
}

func (x *SyncStats) GetInvalidFormat() int32 {
	if x != nil {
		return x.InvalidFormat
	}
	return 0
}

func (x *SyncStats) GetCreated() int32 {
	if x != nil {
		return x.Created
	}
	return 0
}

func (x *SyncStats) GetUpdated() int32 {
	if x != nil {
		return x.Updated
	}
	return 0
}

func (x *SyncStats) GetSkipped() int32 {
	if x != nil {
		return x.Skipped
	}
	return 0
}

func (x *SyncStats) GetNewReferences() map[string]int32 {
	if x != nil {
		return x.NewReferences
	}
	return nil
}

func (x *SyncStats) GetErrors() int32 {
	if x != nil {
		return x.Errors
	}
	return 0
}

type RelinkStats struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Total          int32                  `protobuf:"varint,1,opt,name=total,proto3" json:"total,omitempty"`
	WithTeams      int32                  `protobuf:"varint,2,opt,name=with_teams,json=withTeams,proto3" json:"with_teams,omitempty"`
	FoundMatches   int32                  `protobuf:"varint,3,opt,name=found_matches,json=foundMatches,proto3" json:"found_matches,omitempty"`
	AlreadyCorrect int32                  `protobuf:"varint,4,opt,name=already_correct,json=alreadyCorrect,proto3" json:"already_correct,omitempty"`
	Updated        int32                  `protobuf:"varint,5,opt,name=updated,proto3" json:"updated,omitempty"`
	Errors         int32                  `protobuf:"varint,6,opt,name=errors,proto3" json:"errors,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *RelinkStats) Reset() {
	*x = RelinkStats{}
	mi := &file_importer_v1_importer_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RelinkStats) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RelinkStats) ProtoMessage() {}

func (x *RelinkStats) ProtoReflect() protoreflect.Message {
	mi := &file_importer_v1_importer_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RelinkStats.ProtoReflect.Descriptor instead.
func (*RelinkStats) Descriptor() ([]byte, []int) {
	return file_importer_v1_importer_proto_rawDescGZIP(), []int{16}
}

func (x *RelinkStats) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *RelinkStats) GetWithTeams() int32 {
	if x != nil {
		return x.WithTeams
	}
	return 0
}

func (x *RelinkStats) GetFoundMatches() int32 {
	if x != nil {
		return x.FoundMatches
	}
	return 0
}

func (x *RelinkStats) GetAlreadyCorrect() int32 {
	if x != nil {
		return x.AlreadyCorrect
	}
	return 0
}

func (x *RelinkStats) GetUpdated() int32 {
	if x != nil {
		return x.Updated
	}
	return 0
}

func (x *RelinkStats) GetErrors() int32 {
	if x != nil {
		return x.Errors
	}
	return 0
}

var File_importer_v1_importer_proto protoreflect.FileDescriptor

const file_importer_v1_importer_proto_rawDesc = "" +
	"\n" +
	"\x1aimporter/v1/importer.proto\x12\vimporter.v1\"I\n" +
	"\x15ImportWorkbookRequest\x12\x1a\n" +
	"\bworkbook\x18\x01 \x01(\fR\bworkbook\x12\x14\n" +
	"\x05sheet\x18\x02 \x01(\tR\x05sheet\"i\n" +
	"\x16ImportWorkbookResponse\x12.\n" +
	"\x05stats\x18\x01 \x01(\v2\x18.importer.v1.ImportStatsR\x05stats\x12\x1f\n" +
	"\vreport_xlsx\x18\x02 \x01(\fR\n" +
	"reportXlsx\"F\n" +
	"\x12StartImportRequest\x12\x1a\n" +
	"\bworkbook\x18\x01 \x01(\fR\bworkbook\x12\x14\n" +
	"\x05sheet\x18\x02 \x01(\tR\x05sheet\",\n" +
	"\x13StartImportResponse\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\"/\n" +
	"\x16GetImportStatusRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\"u\n" +
	"\x17GetImportStatusResponse\x12\x14\n" +
	"\x05state\x18\x01 \x01(\tR\x05state\x12.\n" +
	"\x05stats\x18\x02 \x01(\v2\x18.importer.v1.ImportStatsR\x05stats\x12\x14\n" +
	"\x05error\x18\x03 \x01(\tR\x05error\"v\n" +
	"\x13SyncWorkbookRequest\x12\x1a\n" +
	"\bworkbook\x18\x01 \x01(\fR\bworkbook\x12\x14\n" +
	"\x05sheet\x18\x02 \x01(\tR\x05sheet\x12\x17\n" +
	"\adry_run\x18\x03 \x01(\bR\x06dryRun\x12\x14\n" +
	"\x05limit\x18\x04 \x01(\x05R\x05limit\"D\n" +
	"\x14SyncWorkbookResponse\x12,\n" +
	"\x05stats\x18\x01 \x01(\v2\x16.importer.v1.SyncStatsR\x05stats\"-\n" +
	"\x12RelinkLogosRequest\x12\x17\n" +
	"\adry_run\x18\x01 \x01(\bR\x06dryRun\"E\n" +
	"\x13RelinkLogosResponse\x12.\n" +
	"\x05stats\x18\x01 \x01(\v2\x18.importer.v1.RelinkStatsR\x05stats\"\x15\n" +
	"\x13ListRegistryRequest\":\n" +
	"\x14ListRegistryResponse\x12\"\n" +
	"\finstitutions\x18\x01 \x03(\tR\finstitutions\",\n" +
	"\x11DeleteItemRequest\x12\x17\n" +
	"\aitem_id\x18\x01 \x01(\tR\x06itemId\"\x14\n" +
	"\x12DeleteItemResponse\"\xd7\x03\n" +
	"\vImportStats\x12\x14\n" +
	"\x05total\x18\x01 \x01(\x05R\x05total\x12\x1c\n" +
	"\tprocessed\x18\x02 \x01(\x05R\tprocessed\x120\n" +
	"\x14skipped_not_relevant\x18\x03 \x01(\x05R\x12skippedNotRelevant\x12%\n" +
	"\x0eskipped_exists\x18\x04 \x01(\x05R\rskippedExists\x12.\n" +
	"\x13skipped_empty_title\x18\x05 \x01(\x05R\x11skippedEmptyTitle\x12%\n" +
	"\x0einvalid_format\x18\x06 \x01(\x05R\rinvalidFormat\x12\x16\n" +
	"\x06errors\x18\a \x01(\x05R\x06errors\x121\n" +
	"\x14matched_institutions\x18\b \x01(\x05R\x13matchedInstitutions\x12V\n" +
	"\x10unmapped_by_kind\x18\t \x03(\v2,.importer.v1.ImportStats.UnmappedByKindEntryR\x0eunmappedByKind\x1aA\n" +
	"\x13UnmappedByKindEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\"\xe1\x02\n" +
	"\tSyncStats\x12\x1d\n" +
	"\n" +
	"total_rows\x18\x01 \x01(\x05R\ttotalRows\x12\x14\n" +
	"\x05valid\x18\x02 \x01(\x05R\x05valid\x12%\n" +
	"\x0einvalid_format\x18\x03 \x01(\x05R\rinvalidFormat\x12\x18\n" +
	"\acreated\x18\x04 \x01(\x05R\acreated\x12\x18\n" +
	"\aupdated\x18\x05 \x01(\x05R\aupdated\x12\x18\n" +
	"\askipped\x18\x06 \x01(\x05R\askipped\x12P\n" +
	"\x0enew_references\x18\a \x03(\v2).importer.v1.SyncStats.NewReferencesEntryR\rnewReferences\x12\x16\n" +
	"\x06errors\x18\b \x01(\x05R\x06errors\x1a@\n" +
	"\x12NewReferencesEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\"\xc2\x01\n" +
	"\vRelinkStats\x12\x14\n" +
	"\x05total\x18\x01 \x01(\x05R\x05total\x12\x1d\n" +
	"\n" +
	"with_teams\x18\x02 \x01(\x05R\twithTeams\x12#\n" +
	"\rfound_matches\x18\x03 \x01(\x05R\ffoundMatches\x12'\n" +
	"\x0falready_correct\x18\x04 \x01(\x05R\x0ealreadyCorrect\x12\x18\n" +
	"\aupdated\x18\x05 \x01(\x05R\aupdated\x12\x16\n" +
	"\x06errors\x18\x06 \x01(\x05R\x06errors2\xe5\x04\n" +
	"\rImportService\x12Y\n" +
	"\x0eImportWorkbook\x12\".importer.v1.ImportWorkbookRequest\x1a#.importer.v1.ImportWorkbookResponse\x12P\n" +
	"\vStartImport\x12\x1f.importer.v1.StartImportRequest\x1a .importer.v1.StartImportResponse\x12\\\n" +
	"\x0fGetImportStatus\x12#.importer.v1.GetImportStatusRequest\x1a$.importer.v1.GetImportStatusResponse\x12S\n" +
	"\fSyncWorkbook\x12 .importer.v1.SyncWorkbookRequest\x1a!.importer.v1.SyncWorkbookResponse\x12P\n" +
	"\vRelinkLogos\x12\x1f.importer.v1.RelinkLogosRequest\x1a .importer.v1.RelinkLogosResponse\x12S\n" +
	"\fListRegistry\x12 .importer.v1.ListRegistryRequest\x1a!.importer.v1.ListRegistryResponse\x12M\n" +
	"\n" +
	"DeleteItem\x12\x1e.importer.v1.DeleteItemRequest\x1a\x1f.importer.v1.DeleteItemResponseBAZ?github.com/smartjects/importer/gen/proto/importer/v1;importerpbb\x06proto3"

var (
	file_importer_v1_importer_proto_rawDescOnce sync.Once
	file_importer_v1_importer_proto_rawDescData []byte
)

func file_importer_v1_importer_proto_rawDescGZIP() []byte {
	file_importer_v1_importer_proto_rawDescOnce.Do(func() {
		file_importer_v1_importer_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_importer_v1_importer_proto_rawDesc), len(file_importer_v1_importer_proto_rawDesc)))
	})
	return file_importer_v1_importer_proto_rawDescData
}

var file_importer_v1_importer_proto_msgTypes = make([]protoimpl.MessageInfo, 19)
var file_importer_v1_importer_proto_goTypes = []any{
	(*ImportWorkbookRequest)(nil),   // 0: importer.v1.ImportWorkbookRequest
	(*ImportWorkbookResponse)(nil),  // 1: importer.v1.ImportWorkbookResponse
	(*StartImportRequest)(nil),      // 2: importer.v1.StartImportRequest
	(*StartImportResponse)(nil),     // 3: importer.v1.StartImportResponse
	(*GetImportStatusRequest)(nil),  // 4: importer.v1.GetImportStatusRequest
	(*GetImportStatusResponse)(nil), // 5: importer.v1.GetImportStatusResponse
	(*SyncWorkbookRequest)(nil),     // 6: importer.v1.SyncWorkbookRequest
	(*SyncWorkbookResponse)(nil),    // 7: importer.v1.SyncWorkbookResponse
	(*RelinkLogosRequest)(nil),      // 8: importer.v1.RelinkLogosRequest
	(*RelinkLogosResponse)(nil),     // 9: importer.v1.RelinkLogosResponse
	(*ListRegistryRequest)(nil),     // 10: importer.v1.ListRegistryRequest
	(*ListRegistryResponse)(nil),    // 11: importer.v1.ListRegistryResponse
	(*DeleteItemRequest)(nil),       // 12: importer.v1.DeleteItemRequest
	(*DeleteItemResponse)(nil),      // 13: importer.v1.DeleteItemResponse
	(*ImportStats)(nil),             // 14: importer.v1.ImportStats
	(*SyncStats)(nil),               // 15: importer.v1.SyncStats
	(*RelinkStats)(nil),             // 16: importer.v1.RelinkStats
	nil,                             // 17: importer.v1.ImportStats.UnmappedByKindEntry
	nil,                             // 18: importer.v1.SyncStats.NewReferencesEntry
}
var file_importer_v1_importer_proto_depIdxs = []int32{
	14, // 0: importer.v1.ImportWorkbookResponse.stats:type_name -> importer.v1.ImportStats
	14, // 1: importer.v1.GetImportStatusResponse.stats:type_name -> importer.v1.ImportStats
	15, // 2: importer.v1.SyncWorkbookResponse.stats:type_name -> importer.v1.SyncStats
	16, // 3: importer.v1.RelinkLogosResponse.stats:type_name -> importer.v1.RelinkStats
	17, // 4: importer.v1.ImportStats.unmapped_by_kind:type_name -> importer.v1.ImportStats.UnmappedByKindEntry
	18, // 5: importer.v1.SyncStats.new_references:type_name -> importer.v1.SyncStats.NewReferencesEntry
	0,  // 6: importer.v1.ImportService.ImportWorkbook:input_type -> importer.v1.ImportWorkbookRequest
	2,  // 7: importer.v1.ImportService.StartImport:input_type -> importer.v1.StartImportRequest
	4,  // 8: importer.v1.ImportService.GetImportStatus:input_type -> importer.v1.GetImportStatusRequest
	6,  // 9: importer.v1.ImportService.SyncWorkbook:input_type -> importer.v1.SyncWorkbookRequest
	8,  // 10: importer.v1.ImportService.RelinkLogos:input_type -> importer.v1.RelinkLogosRequest
	10, // 11: importer.v1.ImportService.ListRegistry:input_type -> importer.v1.ListRegistryRequest
	12, // 12: importer.v1.ImportService.DeleteItem:input_type -> importer.v1.DeleteItemRequest
	1,  // 13: importer.v1.ImportService.ImportWorkbook:output_type -> importer.v1.ImportWorkbookResponse
	3,  // 14: importer.v1.ImportService.StartImport:output_type -> importer.v1.StartImportResponse
	5,  // 15: importer.v1.ImportService.GetImportStatus:output_type -> importer.v1.GetImportStatusResponse
	7,  // 16: importer.v1.ImportService.SyncWorkbook:output_type -> importer.v1.SyncWorkbookResponse
	9,  // 17: importer.v1.ImportService.RelinkLogos:output_type -> importer.v1.RelinkLogosResponse
	11, // 18: importer.v1.ImportService.ListRegistry:output_type -> importer.v1.ListRegistryResponse
	13, // 19: importer.v1.ImportService.DeleteItem:output_type -> importer.v1.DeleteItemResponse
	13, // [13:20] is the sub-list for method output_type
	6,  // [6:13] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_importer_v1_importer_proto_init() }
func file_importer_v1_importer_proto_init() {
	if File_importer_v1_importer_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_importer_v1_importer_proto_rawDesc), len(file_importer_v1_importer_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   19,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_importer_v1_importer_proto_goTypes,
		DependencyIndexes: file_importer_v1_importer_proto_depIdxs,
		MessageInfos:      file_importer_v1_importer_proto_msgTypes,
	}.Build()
	File_importer_v1_importer_proto = out.File
	file_importer_v1_importer_proto_goTypes = nil
	file_importer_v1_importer_proto_depIdxs = nil
}
