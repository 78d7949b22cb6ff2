// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: extractor/v1/extractor.proto

package extractorv1

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

type ExtractedField struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	Name       string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Value      string                 `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	Confidence float32                `protobuf:"fixed32,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Source     string                 `protobuf:"bytes,4,opt,name=source,proto3" json:"source,omitempty"`
	// set only for numeric fields
	Numeric       *float64 `protobuf:"fixed64,5,opt,name=numeric,proto3,oneof" json:"numeric,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractedField) Reset() {
	*x = ExtractedField{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractedField) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractedField) ProtoMessage() {}

func (x *ExtractedField) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractedField.ProtoReflect.Descriptor instead.
func (*ExtractedField) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{0}
}

func (x *ExtractedField) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ExtractedField) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *ExtractedField) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *ExtractedField) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *ExtractedField) GetNumeric() float64 {
	if x != nil && x.Numeric != nil {
		return *x.Numeric
	}
	return 0
}

type ExtractionMetadata struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Tier              string                 `protobuf:"bytes,1,opt,name=tier,proto3" json:"tier,omitempty"`
	RetryCount        int32                  `protobuf:"varint,2,opt,name=retry_count,json=retryCount,proto3" json:"retry_count,omitempty"`
	ValidationErrors  []string               `protobuf:"bytes,3,rep,name=validation_errors,json=validationErrors,proto3" json:"validation_errors,omitempty"`
	NeedsManualReview bool                   `protobuf:"varint,4,opt,name=needs_manual_review,json=needsManualReview,proto3" json:"needs_manual_review,omitempty"`
	TextLength        int32                  `protobuf:"varint,5,opt,name=text_length,json=textLength,proto3" json:"text_length,omitempty"`
	PromptTruncated   bool                   `protobuf:"varint,6,opt,name=prompt_truncated,json=promptTruncated,proto3" json:"prompt_truncated,omitempty"`
	Language          string                 `protobuf:"bytes,7,opt,name=language,proto3" json:"language,omitempty"`
	ModelName         string                 `protobuf:"bytes,8,opt,name=model_name,json=modelName,proto3" json:"model_name,omitempty"`
	ManuallyReviewed  bool                   `protobuf:"varint,9,opt,name=manually_reviewed,json=manuallyReviewed,proto3" json:"manually_reviewed,omitempty"`
	ReviewedAt        string                 `protobuf:"bytes,10,opt,name=reviewed_at,json=reviewedAt,proto3" json:"reviewed_at,omitempty"` // RFC 3339
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *ExtractionMetadata) Reset() {
	*x = ExtractionMetadata{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractionMetadata) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractionMetadata) ProtoMessage() {}

func (x *ExtractionMetadata) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractionMetadata.ProtoReflect.Descriptor instead.
func (*ExtractionMetadata) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{1}
}

func (x *ExtractionMetadata) GetTier() string {
	if x != nil {
		return x.Tier
	}
	return ""
}

func (x *ExtractionMetadata) GetRetryCount() int32 {
	if x != nil {
		return x.RetryCount
	}
	return 0
}

func (x *ExtractionMetadata) GetValidationErrors() []string {
	if x != nil {
		return x.ValidationErrors
	}
	return nil
}

func (x *ExtractionMetadata) GetNeedsManualReview() bool {
	if x != nil {
		return x.NeedsManualReview
	}
	return false
}

func (x *ExtractionMetadata) GetTextLength() int32 {
	if x != nil {
		return x.TextLength
	}
	return 0
}

func (x *ExtractionMetadata) GetPromptTruncated() bool {
	if x != nil {
		return x.PromptTruncated
	}
	return false
}

func (x *ExtractionMetadata) GetLanguage() string {
	if x != nil {
		return x.Language
	}
	return ""
}

func (x *ExtractionMetadata) GetModelName() string {
	if x != nil {
		return x.ModelName
	}
	return ""
}

func (x *ExtractionMetadata) GetManuallyReviewed() bool {
	if x != nil {
		return x.ManuallyReviewed
	}
	return false
}

func (x *ExtractionMetadata) GetReviewedAt() string {
	if x != nil {
		return x.ReviewedAt
	}
	return ""
}

type Extraction struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	ExtractionId      string                 `protobuf:"bytes,1,opt,name=extraction_id,json=extractionId,proto3" json:"extraction_id,omitempty"`
	DocumentId        string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	DocumentType      string                 `protobuf:"bytes,3,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	Fields            []*ExtractedField      `protobuf:"bytes,4,rep,name=fields,proto3" json:"fields,omitempty"`
	OverallConfidence float32                `protobuf:"fixed32,5,opt,name=overall_confidence,json=overallConfidence,proto3" json:"overall_confidence,omitempty"`
	Status            string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	Error             string                 `protobuf:"bytes,7,opt,name=error,proto3" json:"error,omitempty"`
	Metadata          *ExtractionMetadata    `protobuf:"bytes,8,opt,name=metadata,proto3" json:"metadata,omitempty"`
	CreatedAt         string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Extraction) Reset() {
	*x = Extraction{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Extraction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Extraction) ProtoMessage() {}

func (x *Extraction) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Extraction.ProtoReflect.Descriptor instead.
func (*Extraction) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{2}
}

func (x *Extraction) GetExtractionId() string {
	if x != nil {
		return x.ExtractionId
	}
	return ""
}

func (x *Extraction) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *Extraction) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *Extraction) GetFields() []*ExtractedField {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *Extraction) GetOverallConfidence() float32 {
	if x != nil {
		return x.OverallConfidence
	}
	return 0
}

func (x *Extraction) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Extraction) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

func (x *Extraction) GetMetadata() *ExtractionMetadata {
	if x != nil {
		return x.Metadata
	}
	return nil
}

func (x *Extraction) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ExtractDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	DocumentType  string                 `protobuf:"bytes,2,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"` // free-form hint
	OcrSource     bool                   `protobuf:"varint,3,opt,name=ocr_source,json=ocrSource,proto3" json:"ocr_source,omitempty"`
	Filename      string                 `protobuf:"bytes,4,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractDocumentRequest) Reset() {
	*x = ExtractDocumentRequest{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractDocumentRequest) ProtoMessage() {}

func (x *ExtractDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractDocumentRequest.ProtoReflect.Descriptor instead.
func (*ExtractDocumentRequest) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{3}
}

func (x *ExtractDocumentRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *ExtractDocumentRequest) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *ExtractDocumentRequest) GetOcrSource() bool {
	if x != nil {
		return x.OcrSource
	}
	return false
}

func (x *ExtractDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type ExtractDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Extraction    *Extraction            `protobuf:"bytes,1,opt,name=extraction,proto3" json:"extraction,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractDocumentResponse) Reset() {
	*x = ExtractDocumentResponse{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractDocumentResponse) ProtoMessage() {}

func (x *ExtractDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractDocumentResponse.ProtoReflect.Descriptor instead.
func (*ExtractDocumentResponse) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{4}
}

func (x *ExtractDocumentResponse) GetExtraction() *Extraction {
	if x != nil {
		return x.Extraction
	}
	return nil
}

type RetryExtractionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ExtractionId  string                 `protobuf:"bytes,1,opt,name=extraction_id,json=extractionId,proto3" json:"extraction_id,omitempty"`
	Model         string                 `protobuf:"bytes,2,opt,name=model,proto3" json:"model,omitempty"` // empty keeps the configured default
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetryExtractionRequest) Reset() {
	*x = RetryExtractionRequest{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryExtractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryExtractionRequest) ProtoMessage() {}

func (x *RetryExtractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryExtractionRequest.ProtoReflect.Descriptor instead.
func (*RetryExtractionRequest) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{5}
}

func (x *RetryExtractionRequest) GetExtractionId() string {
	if x != nil {
		return x.ExtractionId
	}
	return ""
}

func (x *RetryExtractionRequest) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

type GetExtractionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ExtractionId  string                 `protobuf:"bytes,1,opt,name=extraction_id,json=extractionId,proto3" json:"extraction_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetExtractionRequest) Reset() {
	*x = GetExtractionRequest{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExtractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExtractionRequest) ProtoMessage() {}

func (x *GetExtractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExtractionRequest.ProtoReflect.Descriptor instead.
func (*GetExtractionRequest) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{6}
}

func (x *GetExtractionRequest) GetExtractionId() string {
	if x != nil {
		return x.ExtractionId
	}
	return ""
}

type ListExtractionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"` // 0 uses the server default
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExtractionsRequest) Reset() {
	*x = ListExtractionsRequest{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExtractionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExtractionsRequest) ProtoMessage() {}

func (x *ListExtractionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExtractionsRequest.ProtoReflect.Descriptor instead.
func (*ListExtractionsRequest) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{7}
}

func (x *ListExtractionsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListExtractionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Extractions   []*Extraction          `protobuf:"bytes,1,rep,name=extractions,proto3" json:"extractions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExtractionsResponse) Reset() {
	*x = ListExtractionsResponse{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExtractionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExtractionsResponse) ProtoMessage() {}

func (x *ListExtractionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExtractionsResponse.ProtoReflect.Descriptor instead.
func (*ListExtractionsResponse) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{8}
}

func (x *ListExtractionsResponse) GetExtractions() []*Extraction {
	if x != nil {
		return x.Extractions
	}
	return nil
}

type ReviewRecord struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ExtractionId    string                 `protobuf:"bytes,2,opt,name=extraction_id,json=extractionId,proto3" json:"extraction_id,omitempty"`
	ReviewerId      string                 `protobuf:"bytes,3,opt,name=reviewer_id,json=reviewerId,proto3" json:"reviewer_id,omitempty"`
	OriginalFields  map[string]string      `protobuf:"bytes,4,rep,name=original_fields,json=originalFields,proto3" json:"original_fields,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	CorrectedFields map[string]string      `protobuf:"bytes,5,rep,name=corrected_fields,json=correctedFields,proto3" json:"corrected_fields,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	Notes           string                 `protobuf:"bytes,6,opt,name=notes,proto3" json:"notes,omitempty"`
	ReviewedAt      string                 `protobuf:"bytes,7,opt,name=reviewed_at,json=reviewedAt,proto3" json:"reviewed_at,omitempty"` // RFC 3339
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ReviewRecord) Reset() {
	*x = ReviewRecord{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReviewRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReviewRecord) ProtoMessage() {}

func (x *ReviewRecord) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReviewRecord.ProtoReflect.Descriptor instead.
func (*ReviewRecord) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{9}
}

func (x *ReviewRecord) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ReviewRecord) GetExtractionId() string {
	if x != nil {
		return x.ExtractionId
	}
	return ""
}

func (x *ReviewRecord) GetReviewerId() string {
	if x != nil {
		return x.ReviewerId
	}
	return ""
}

func (x *ReviewRecord) GetOriginalFields() map[string]string {
	if x != nil {
		return x.OriginalFields
	}
	return nil
}

func (x *ReviewRecord) GetCorrectedFields() map[string]string {
	if x != nil {
		return x.CorrectedFields
	}
	return nil
}

func (x *ReviewRecord) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *ReviewRecord) GetReviewedAt() string {
	if x != nil {
		return x.ReviewedAt
	}
	return ""
}

type SubmitReviewRequest struct {
	state        protoimpl.MessageState `protogen:"open.v1"`
	ExtractionId string                 `protobuf:"bytes,1,opt,name=extraction_id,json=extractionId,proto3" json:"extraction_id,omitempty"`
	ReviewerId   string                 `protobuf:"bytes,2,opt,name=reviewer_id,json=reviewerId,proto3" json:"reviewer_id,omitempty"`
	// canonical field name -> corrected value; empty value removes the field
	Corrections   map[string]string `protobuf:"bytes,3,rep,name=corrections,proto3" json:"corrections,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	Notes         string            `protobuf:"bytes,4,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitReviewRequest) Reset() {
	*x = SubmitReviewRequest{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitReviewRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitReviewRequest) ProtoMessage() {}

func (x *SubmitReviewRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitReviewRequest.ProtoReflect.Descriptor instead.
func (*SubmitReviewRequest) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{10}
}

func (x *SubmitReviewRequest) GetExtractionId() string {
	if x != nil {
		return x.ExtractionId
	}
	return ""
}

func (x *SubmitReviewRequest) GetReviewerId() string {
	if x != nil {
		return x.ReviewerId
	}
	return ""
}

func (x *SubmitReviewRequest) GetCorrections() map[string]string {
	if x != nil {
		return x.Corrections
	}
	return nil
}

func (x *SubmitReviewRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type SubmitReviewResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Extraction    *Extraction            `protobuf:"bytes,1,opt,name=extraction,proto3" json:"extraction,omitempty"`
	Record        *ReviewRecord          `protobuf:"bytes,2,opt,name=record,proto3" json:"record,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitReviewResponse) Reset() {
	*x = SubmitReviewResponse{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitReviewResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitReviewResponse) ProtoMessage() {}

func (x *SubmitReviewResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitReviewResponse.ProtoReflect.Descriptor instead.
func (*SubmitReviewResponse) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{11}
}

func (x *SubmitReviewResponse) GetExtraction() *Extraction {
	if x != nil {
		return x.Extraction
	}
	return nil
}

func (x *SubmitReviewResponse) GetRecord() *ReviewRecord {
	if x != nil {
		return x.Record
	}
	return nil
}

type ListReviewsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ExtractionId  string                 `protobuf:"bytes,1,opt,name=extraction_id,json=extractionId,proto3" json:"extraction_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReviewsRequest) Reset() {
	*x = ListReviewsRequest{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReviewsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReviewsRequest) ProtoMessage() {}

func (x *ListReviewsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReviewsRequest.ProtoReflect.Descriptor instead.
func (*ListReviewsRequest) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{12}
}

func (x *ListReviewsRequest) GetExtractionId() string {
	if x != nil {
		return x.ExtractionId
	}
	return ""
}

type ListReviewsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*ReviewRecord        `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReviewsResponse) Reset() {
	*x = ListReviewsResponse{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReviewsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReviewsResponse) ProtoMessage() {}

func (x *ListReviewsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReviewsResponse.ProtoReflect.Descriptor instead.
func (*ListReviewsResponse) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{13}
}

func (x *ListReviewsResponse) GetRecords() []*ReviewRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

type ExportExtractionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"` // 0 uses the server default
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportExtractionsRequest) Reset() {
	*x = ExportExtractionsRequest{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportExtractionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportExtractionsRequest) ProtoMessage() {}

func (x *ExportExtractionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportExtractionsRequest.ProtoReflect.Descriptor instead.
func (*ExportExtractionsRequest) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{14}
}

func (x *ExportExtractionsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ExportExtractionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	RowCount      int32                  `protobuf:"varint,2,opt,name=row_count,json=rowCount,proto3" json:"row_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportExtractionsResponse) Reset() {
	*x = ExportExtractionsResponse{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportExtractionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportExtractionsResponse) ProtoMessage() {}

func (x *ExportExtractionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportExtractionsResponse.ProtoReflect.Descriptor instead.
func (*ExportExtractionsResponse) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{15}
}

func (x *ExportExtractionsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportExtractionsResponse) GetRowCount() int32 {
	if x != nil {
		return x.RowCount
	}
	return 0
}

var File_extractor_v1_extractor_proto protoreflect.FileDescriptor

const file_extractor_v1_extractor_proto_rawDesc = "" +
	"\n" +
	"\x1cextractor/v1/extractor.proto\x12\fextractor.v1\"\x9d\x01\n" +
	"\x0eExtractedField\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x02R\n" +
	"confidence\x12\x16\n" +
	"\x06source\x18\x04 \x01(\tR\x06source\x12\x1d\n" +
	"\anumeric\x18\x05 \x01(\x01H\x00R\anumeric\x88\x01\x01B\n" +
	"\n" +
	"\b_numeric\"\xfb\x02\n" +
	"\x12ExtractionMetadata\x12\x12\n" +
	"\x04tier\x18\x01 \x01(\tR\x04tier\x12\x1f\n" +
	"\vretry_count\x18\x02 \x01(\x05R\n" +
	"retryCount\x12+\n" +
	"\x11validation_errors\x18\x03 \x03(\tR\x10validationErrors\x12.\n" +
	"\x13needs_manual_review\x18\x04 \x01(\bR\x11needsManualReview\x12\x1f\n" +
	"\vtext_length\x18\x05 \x01(\x05R\n" +
	"textLength\x12)\n" +
	"\x10prompt_truncated\x18\x06 \x01(\bR\x0fpromptTruncated\x12\x1a\n" +
	"\blanguage\x18\a \x01(\tR\blanguage\x12\x1d\n" +
	"\n" +
	"model_name\x18\b \x01(\tR\tmodelName\x12+\n" +
	"\x11manually_reviewed\x18\t \x01(\bR\x10manuallyReviewed\x12\x1f\n" +
	"\vreviewed_at\x18\n" +
	" \x01(\tR\n" +
	"reviewedAt\"\xe7\x02\n" +
	"\n" +
	"Extraction\x12#\n" +
	"\rextraction_id\x18\x01 \x01(\tR\fextractionId\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12#\n" +
	"\rdocument_type\x18\x03 \x01(\tR\fdocumentType\x124\n" +
	"\x06fields\x18\x04 \x03(\v2\x1c.extractor.v1.ExtractedFieldR\x06fields\x12-\n" +
	"\x12overall_confidence\x18\x05 \x01(\x02R\x11overallConfidence\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12\x14\n" +
	"\x05error\x18\a \x01(\tR\x05error\x12<\n" +
	"\bmetadata\x18\b \x01(\v2 .extractor.v1.ExtractionMetadataR\bmetadata\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\"\x8c\x01\n" +
	"\x16ExtractDocumentRequest\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12#\n" +
	"\rdocument_type\x18\x02 \x01(\tR\fdocumentType\x12\x1d\n" +
	"\n" +
	"ocr_source\x18\x03 \x01(\bR\tocrSource\x12\x1a\n" +
	"\bfilename\x18\x04 \x01(\tR\bfilename\"S\n" +
	"\x17ExtractDocumentResponse\x128\n" +
	"\n" +
	"extraction\x18\x01 \x01(\v2\x18.extractor.v1.ExtractionR\n" +
	"extraction\"S\n" +
	"\x16RetryExtractionRequest\x12#\n" +
	"\rextraction_id\x18\x01 \x01(\tR\fextractionId\x12\x14\n" +
	"\x05model\x18\x02 \x01(\tR\x05model\";\n" +
	"\x14GetExtractionRequest\x12#\n" +
	"\rextraction_id\x18\x01 \x01(\tR\fextractionId\".\n" +
	"\x16ListExtractionsRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\"U\n" +
	"\x17ListExtractionsResponse\x12:\n" +
	"\vextractions\x18\x01 \x03(\v2\x18.extractor.v1.ExtractionR\vextractions\"\xd7\x03\n" +
	"\fReviewRecord\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12#\n" +
	"\rextraction_id\x18\x02 \x01(\tR\fextractionId\x12\x1f\n" +
	"\vreviewer_id\x18\x03 \x01(\tR\n" +
	"reviewerId\x12W\n" +
	"\x0foriginal_fields\x18\x04 \x03(\v2..extractor.v1.ReviewRecord.OriginalFieldsEntryR\x0eoriginalFields\x12Z\n" +
	"\x10corrected_fields\x18\x05 \x03(\v2/.extractor.v1.ReviewRecord.CorrectedFieldsEntryR\x0fcorrectedFields\x12\x14\n" +
	"\x05notes\x18\x06 \x01(\tR\x05notes\x12\x1f\n" +
	"\vreviewed_at\x18\a \x01(\tR\n" +
	"reviewedAt\x1aA\n" +
	"\x13OriginalFieldsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\x1aB\n" +
	"\x14CorrectedFieldsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\x87\x02\n" +
	"\x13SubmitReviewRequest\x12#\n" +
	"\rextraction_id\x18\x01 \x01(\tR\fextractionId\x12\x1f\n" +
	"\vreviewer_id\x18\x02 \x01(\tR\n" +
	"reviewerId\x12T\n" +
	"\vcorrections\x18\x03 \x03(\v22.extractor.v1.SubmitReviewRequest.CorrectionsEntryR\vcorrections\x12\x14\n" +
	"\x05notes\x18\x04 \x01(\tR\x05notes\x1a>\n" +
	"\x10CorrectionsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\x84\x01\n" +
	"\x14SubmitReviewResponse\x128\n" +
	"\n" +
	"extraction\x18\x01 \x01(\v2\x18.extractor.v1.ExtractionR\n" +
	"extraction\x122\n" +
	"\x06record\x18\x02 \x01(\v2\x1a.extractor.v1.ReviewRecordR\x06record\"9\n" +
	"\x12ListReviewsRequest\x12#\n" +
	"\rextraction_id\x18\x01 \x01(\tR\fextractionId\"K\n" +
	"\x13ListReviewsResponse\x124\n" +
	"\arecords\x18\x01 \x03(\v2\x1a.extractor.v1.ReviewRecordR\arecords\"0\n" +
	"\x18ExportExtractionsRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\"L\n" +
	"\x19ExportExtractionsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1b\n" +
	"\trow_count\x18\x02 \x01(\x05R\browCount2\x9f\x05\n" +
	"\x10ExtractorService\x12^\n" +
	"\x0fExtractDocument\x12$.extractor.v1.ExtractDocumentRequest\x1a%.extractor.v1.ExtractDocumentResponse\x12^\n" +
	"\x0fRetryExtraction\x12$.extractor.v1.RetryExtractionRequest\x1a%.extractor.v1.ExtractDocumentResponse\x12Z\n" +
	"\rGetExtraction\x12\".extractor.v1.GetExtractionRequest\x1a%.extractor.v1.ExtractDocumentResponse\x12^\n" +
	"\x0fListExtractions\x12$.extractor.v1.ListExtractionsRequest\x1a%.extractor.v1.ListExtractionsResponse\x12U\n" +
	"\fSubmitReview\x12!.extractor.v1.SubmitReviewRequest\x1a\".extractor.v1.SubmitReviewResponse\x12R\n" +
	"\vListReviews\x12 .extractor.v1.ListReviewsRequest\x1a!.extractor.v1.ListReviewsResponse\x12d\n" +
	"\x11ExportExtractions\x12&.extractor.v1.ExportExtractionsRequest\x1a'.extractor.v1.ExportExtractionsResponseB=Z;github.com/agrodesk/docextract/gen/extractor/v1;extractorv1b\x06proto3"

var (
	file_extractor_v1_extractor_proto_rawDescOnce sync.Once
	file_extractor_v1_extractor_proto_rawDescData []byte
)

func file_extractor_v1_extractor_proto_rawDescGZIP() []byte {
	file_extractor_v1_extractor_proto_rawDescOnce.Do(func() {
		file_extractor_v1_extractor_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_extractor_v1_extractor_proto_rawDesc), len(file_extractor_v1_extractor_proto_rawDesc)))
	})
	return file_extractor_v1_extractor_proto_rawDescData
}

var file_extractor_v1_extractor_proto_msgTypes = make([]protoimpl.MessageInfo, 19)
var file_extractor_v1_extractor_proto_goTypes = []any{
	(*ExtractedField)(nil),            // 0: extractor.v1.ExtractedField
	(*ExtractionMetadata)(nil),        // 1: extractor.v1.ExtractionMetadata
	(*Extraction)(nil),                // 2: extractor.v1.Extraction
	(*ExtractDocumentRequest)(nil),    // 3: extractor.v1.ExtractDocumentRequest
	(*ExtractDocumentResponse)(nil),   // 4: extractor.v1.ExtractDocumentResponse
	(*RetryExtractionRequest)(nil),    // 5: extractor.v1.RetryExtractionRequest
	(*GetExtractionRequest)(nil),      // 6: extractor.v1.GetExtractionRequest
	(*ListExtractionsRequest)(nil),    // 7: extractor.v1.ListExtractionsRequest
	(*ListExtractionsResponse)(nil),   // 8: extractor.v1.ListExtractionsResponse
	(*ReviewRecord)(nil),              // 9: extractor.v1.ReviewRecord
	(*SubmitReviewRequest)(nil),       // 10: extractor.v1.SubmitReviewRequest
	(*SubmitReviewResponse)(nil),      // 11: extractor.v1.SubmitReviewResponse
	(*ListReviewsRequest)(nil),        // 12: extractor.v1.ListReviewsRequest
	(*ListReviewsResponse)(nil),       // 13: extractor.v1.ListReviewsResponse
	(*ExportExtractionsRequest)(nil),  // 14: extractor.v1.ExportExtractionsRequest
	(*ExportExtractionsResponse)(nil), // 15: extractor.v1.ExportExtractionsResponse
	nil,                               // 16: extractor.v1.ReviewRecord.OriginalFieldsEntry
	nil,                               // 17: extractor.v1.ReviewRecord.CorrectedFieldsEntry
	nil,                               // 18: extractor.v1.SubmitReviewRequest.CorrectionsEntry
}
var file_extractor_v1_extractor_proto_depIdxs = []int32{
	0,  // 0: extractor.v1.Extraction.fields:type_name -> extractor.v1.ExtractedField
	1,  // 1: extractor.v1.Extraction.metadata:type_name -> extractor.v1.ExtractionMetadata
	2,  // 2: extractor.v1.ExtractDocumentResponse.extraction:type_name -> extractor.v1.Extraction
	2,  // 3: extractor.v1.ListExtractionsResponse.extractions:type_name -> extractor.v1.Extraction
	16, // 4: extractor.v1.ReviewRecord.original_fields:type_name -> extractor.v1.ReviewRecord.OriginalFieldsEntry
	17, // 5: extractor.v1.ReviewRecord.corrected_fields:type_name -> extractor.v1.ReviewRecord.CorrectedFieldsEntry
	18, // 6: extractor.v1.SubmitReviewRequest.corrections:type_name -> extractor.v1.SubmitReviewRequest.CorrectionsEntry
	2,  // 7: extractor.v1.SubmitReviewResponse.extraction:type_name -> extractor.v1.Extraction
	9,  // 8: extractor.v1.SubmitReviewResponse.record:type_name -> extractor.v1.ReviewRecord
	9,  // 9: extractor.v1.ListReviewsResponse.records:type_name -> extractor.v1.ReviewRecord
	3,  // 10: extractor.v1.ExtractorService.ExtractDocument:input_type -> extractor.v1.ExtractDocumentRequest
	5,  // 11: extractor.v1.ExtractorService.RetryExtraction:input_type -> extractor.v1.RetryExtractionRequest
	6,  // 12: extractor.v1.ExtractorService.GetExtraction:input_type -> extractor.v1.GetExtractionRequest
	7,  // 13: extractor.v1.ExtractorService.ListExtractions:input_type -> extractor.v1.ListExtractionsRequest
	10, // 14: extractor.v1.ExtractorService.SubmitReview:input_type -> extractor.v1.SubmitReviewRequest
	12, // 15: extractor.v1.ExtractorService.ListReviews:input_type -> extractor.v1.ListReviewsRequest
	14, // 16: extractor.v1.ExtractorService.ExportExtractions:input_type -> extractor.v1.ExportExtractionsRequest
	4,  // 17: extractor.v1.ExtractorService.ExtractDocument:output_type -> extractor.v1.ExtractDocumentResponse
	4,  // 18: extractor.v1.ExtractorService.RetryExtraction:output_type -> extractor.v1.ExtractDocumentResponse
	4,  // 19: extractor.v1.ExtractorService.GetExtraction:output_type -> extractor.v1.ExtractDocumentResponse
	8,  // 20: extractor.v1.ExtractorService.ListExtractions:output_type -> extractor.v1.ListExtractionsResponse
	11, // 21: extractor.v1.ExtractorService.SubmitReview:output_type -> extractor.v1.SubmitReviewResponse
	13, // 22: extractor.v1.ExtractorService.ListReviews:output_type -> extractor.v1.ListReviewsResponse
	15, // 23: extractor.v1.ExtractorService.ExportExtractions:output_type -> extractor.v1.ExportExtractionsResponse
	17, // [17:24] is the sub-list for method output_type
	10, // [10:17] is the sub-list for method input_type
	10, // [10:10] is the sub-list for extension type_name
	10, // [10:10] is the sub-list for extension extendee
	0,  // [0:10] is the sub-list for field type_name
}

func init() { file_extractor_v1_extractor_proto_init() }
func file_extractor_v1_extractor_proto_init() {
	if File_extractor_v1_extractor_proto != nil {
		return
	}
	file_extractor_v1_extractor_proto_msgTypes[0].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_extractor_v1_extractor_proto_rawDesc), len(file_extractor_v1_extractor_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   19,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_extractor_v1_extractor_proto_goTypes,
		DependencyIndexes: file_extractor_v1_extractor_proto_depIdxs,
		MessageInfos:      file_extractor_v1_extractor_proto_msgTypes,
	}.Build()
	File_extractor_v1_extractor_proto = out.File
	file_extractor_v1_extractor_proto_goTypes = nil
	file_extractor_v1_extractor_proto_depIdxs = nil
}
