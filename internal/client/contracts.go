package client

import (
	"net/http"

	"github.com/fivetwenty-io/media-client/internal/mapper"
	"github.com/fivetwenty-io/media-client/internal/rest"
)

// accountPath is the prefix shared by every operation scoped to a media account.
const accountPath = "subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}" +
	"/providers/Microsoft.Media/mediaServices/{accountName}"

// Path parameter names.
const (
	paramSubscriptionID       = "subscriptionId"
	paramResourceGroupName    = "resourceGroupName"
	paramAccountName          = "accountName"
	paramStreamingPolicyName  = "streamingPolicyName"
	paramAssetName            = "assetName"
	paramContentKeyPolicyName = "contentKeyPolicyName"
	paramLiveEventName        = "liveEventName"
	paramLiveOutputName       = "liveOutputName"
)

func pathParam(name string) rest.Param {
	return rest.Param{Name: name, WireName: name, Kind: rest.ParamString, Required: true}
}

func pathParams(names ...string) []rest.Param {
	params := []rest.Param{
		pathParam(paramSubscriptionID),
		pathParam(paramResourceGroupName),
		pathParam(paramAccountName),
	}

	for _, name := range names {
		params = append(params, pathParam(name))
	}

	return params
}

// listQueryParams are the OData options accepted by every list operation.
//
//nolint:gochecknoglobals
var listQueryParams = []rest.Param{
	{Name: "filter", WireName: "$filter", Kind: rest.ParamString},
	{Name: "top", WireName: "$top", Kind: rest.ParamInt},
	{Name: "orderby", WireName: "$orderby", Kind: rest.ParamString},
}

// resourceContracts groups the contracts of one child resource of an account.
// A nil contract means the resource does not support that operation.
type resourceContracts struct {
	list   *rest.OperationContract
	get    *rest.OperationContract
	put    *rest.OperationContract
	patch  *rest.OperationContract
	delete *rest.OperationContract
}

// resourceLayout names one child resource collection.
type resourceLayout struct {
	operationPrefix string
	collectionPath  string
	parents         []string
	nameParam       string
	model           *mapper.ModelSpec
	page            *mapper.ModelSpec
}

func (l resourceLayout) itemPath() string {
	return l.collectionPath + "/{" + l.nameParam + "}"
}

func (l resourceLayout) itemParams() []rest.Param {
	return pathParams(append(append([]string{}, l.parents...), l.nameParam)...)
}

func (l resourceLayout) listContract() *rest.OperationContract {
	return &rest.OperationContract{
		Name:         l.operationPrefix + "_List",
		Method:       http.MethodGet,
		PathTemplate: l.collectionPath,
		PathParams:   pathParams(l.parents...),
		QueryParams:  listQueryParams,
		Responses:    map[int]*mapper.ModelSpec{http.StatusOK: l.page},
	}
}

// getContract treats 404 as a success without a body so a missing resource
// yields no value and no error.
func (l resourceLayout) getContract() *rest.OperationContract {
	return &rest.OperationContract{
		Name:         l.operationPrefix + "_Get",
		Method:       http.MethodGet,
		PathTemplate: l.itemPath(),
		PathParams:   l.itemParams(),
		Responses: map[int]*mapper.ModelSpec{
			http.StatusOK:       l.model,
			http.StatusNotFound: nil,
		},
	}
}

func (l resourceLayout) writeContract(name, method string, codes ...int) *rest.OperationContract {
	responses := make(map[int]*mapper.ModelSpec, len(codes))
	for _, code := range codes {
		responses[code] = l.model
	}

	return &rest.OperationContract{
		Name:         l.operationPrefix + "_" + name,
		Method:       method,
		PathTemplate: l.itemPath(),
		PathParams:   l.itemParams(),
		Body:         l.model,
		BodyName:     "parameters",
		Responses:    responses,
	}
}

func (l resourceLayout) deleteContract(codes ...int) *rest.OperationContract {
	responses := make(map[int]*mapper.ModelSpec, len(codes))
	for _, code := range codes {
		responses[code] = nil
	}

	return &rest.OperationContract{
		Name:         l.operationPrefix + "_Delete",
		Method:       http.MethodDelete,
		PathTemplate: l.itemPath(),
		PathParams:   l.itemParams(),
		Responses:    responses,
	}
}

//nolint:gochecknoglobals
var (
	streamingPolicyLayout = resourceLayout{
		operationPrefix: "StreamingPolicies",
		collectionPath:  accountPath + "/streamingPolicies",
		nameParam:       paramStreamingPolicyName,
		model:           streamingPolicySpec,
		page:            streamingPolicyCollectionSpec,
	}

	assetLayout = resourceLayout{
		operationPrefix: "Assets",
		collectionPath:  accountPath + "/assets",
		nameParam:       paramAssetName,
		model:           assetSpec,
		page:            assetCollectionSpec,
	}

	contentKeyPolicyLayout = resourceLayout{
		operationPrefix: "ContentKeyPolicies",
		collectionPath:  accountPath + "/contentKeyPolicies",
		nameParam:       paramContentKeyPolicyName,
		model:           contentKeyPolicySpec,
		page:            contentKeyPolicyCollectionSpec,
	}

	liveOutputLayout = resourceLayout{
		operationPrefix: "LiveOutputs",
		collectionPath:  accountPath + "/liveEvents/{liveEventName}/liveOutputs",
		parents:         []string{paramLiveEventName},
		nameParam:       paramLiveOutputName,
		model:           liveOutputSpec,
		page:            liveOutputCollectionSpec,
	}

	streamingPolicyContracts = resourceContracts{
		list:   streamingPolicyLayout.listContract(),
		get:    streamingPolicyLayout.getContract(),
		put:    streamingPolicyLayout.writeContract("Create", http.MethodPut, http.StatusCreated),
		delete: streamingPolicyLayout.deleteContract(http.StatusOK, http.StatusNoContent),
	}

	assetContracts = resourceContracts{
		list:   assetLayout.listContract(),
		get:    assetLayout.getContract(),
		put:    assetLayout.writeContract("CreateOrUpdate", http.MethodPut, http.StatusOK, http.StatusCreated),
		patch:  assetLayout.writeContract("Update", http.MethodPatch, http.StatusOK),
		delete: assetLayout.deleteContract(http.StatusOK, http.StatusNoContent),
	}

	contentKeyPolicyContracts = resourceContracts{
		list:   contentKeyPolicyLayout.listContract(),
		get:    contentKeyPolicyLayout.getContract(),
		put:    contentKeyPolicyLayout.writeContract("CreateOrUpdate", http.MethodPut, http.StatusOK, http.StatusCreated),
		delete: contentKeyPolicyLayout.deleteContract(http.StatusOK, http.StatusNoContent),
	}

	liveOutputContracts = resourceContracts{
		list:   liveOutputLayout.listContract(),
		get:    liveOutputLayout.getContract(),
		put:    liveOutputLayout.writeContract("Create", http.MethodPut, http.StatusOK, http.StatusAccepted),
		delete: liveOutputLayout.deleteContract(http.StatusOK, http.StatusAccepted, http.StatusNoContent),
	}

	listContainerSasContract = &rest.OperationContract{
		Name:         "Assets_ListContainerSas",
		Method:       http.MethodPost,
		PathTemplate: assetLayout.itemPath() + "/listContainerSas",
		PathParams:   assetLayout.itemParams(),
		Body:         listContainerSasInputSpec,
		BodyName:     "parameters",
		Responses:    map[int]*mapper.ModelSpec{http.StatusOK: assetContainerSasSpec},
	}

	mediaServiceGetContract = &rest.OperationContract{
		Name:         "MediaServices_Get",
		Method:       http.MethodGet,
		PathTemplate: accountPath,
		PathParams:   pathParams(),
		Responses:    map[int]*mapper.ModelSpec{http.StatusOK: mediaServiceSpec},
	}

	syncStorageKeysContract = &rest.OperationContract{
		Name:         "MediaServices_SyncStorageKeys",
		Method:       http.MethodPost,
		PathTemplate: accountPath + "/syncStorageKeys",
		PathParams:   pathParams(),
		Body:         syncStorageKeysInputSpec,
		BodyName:     "parameters",
		Responses:    map[int]*mapper.ModelSpec{http.StatusOK: nil},
	}
)
