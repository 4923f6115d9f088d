package diagram

// Curated reference diagrams for the well-known architecture shapes.

const microservicesTemplate = `graph TB
    %% Microservices Architecture

    %% External Layer
    subgraph External[External Access]
        Internet[Internet Users]
        Mobile[Mobile Apps]
        Partners[Partner Systems]
    end

    %% CDN and WAF Layer
    subgraph CDN_WAF[Content Delivery & Security]
        CDN[Azure CDN]
        FrontDoor[Azure Front Door]
        WAF[Web Application Firewall]
    end

    %% API Gateway Layer
    subgraph APIGateway[API Management]
        APIM[Azure API Management]
        AppGW[Application Gateway]
    end

    %% Container Orchestration
    subgraph Kubernetes[Container Platform]
        subgraph AKS[Azure Kubernetes Service]
            subgraph Ingress[Ingress Controller]
                NGINX[NGINX Ingress]
            end
            subgraph Services[Microservices]
                Auth[Auth Service]
                Product[Product Service]
                Order[Order Service]
                Payment[Payment Service]
                Notification[Notification Service]
            end
        end
    end

    %% Data Layer
    subgraph DataLayer[Data Services]
        subgraph Databases[Databases]
            SQL[Azure SQL]
            Cosmos[Cosmos DB]
            Redis[Azure Cache for Redis]
        end
        subgraph Storage[Storage]
            Blob[Blob Storage]
            Files[Azure Files]
        end
    end

    %% Integration Layer
    subgraph Integration[Integration Services]
        ServiceBus[Service Bus]
        EventGrid[Event Grid]
        Functions[Azure Functions]
    end

    %% Security & Identity
    subgraph Security[Security Layer]
        AAD[Azure Active Directory]
        KeyVault[Key Vault]
        Defender[Microsoft Defender]
    end

    %% Monitoring
    subgraph Monitoring[Observability]
        Monitor[Azure Monitor]
        AppInsights[Application Insights]
        LogAnalytics[Log Analytics]
    end

    %% Connections
    Internet --> CDN
    Mobile --> FrontDoor
    Partners --> WAF
    CDN --> APIM
    FrontDoor --> APIM
    WAF --> AppGW
    APIM --> NGINX
    AppGW --> NGINX
    NGINX --> Auth
    NGINX --> Product
    NGINX --> Order
    Auth --> KeyVault
    Product --> SQL
    Product --> Redis
    Order --> Cosmos
    Order --> ServiceBus
    Payment --> ServiceBus
    ServiceBus --> Functions
    Functions --> Notification
    Notification --> EventGrid
    AKS --> Monitor
    Services --> AppInsights
    AAD --> APIM
    AAD --> AKS

    %% Styling
    classDef external fill:#FFE6CC,stroke:#D79B00,stroke-width:2px
    classDef network fill:#DAE8FC,stroke:#6C8EBF,stroke-width:2px
    classDef compute fill:#E1D5E7,stroke:#9673A6,stroke-width:2px
    classDef data fill:#D5E8D4,stroke:#82B366,stroke-width:2px
    classDef security fill:#F8CECC,stroke:#B85450,stroke-width:2px
    classDef monitoring fill:#FFF2CC,stroke:#D6B656,stroke-width:2px

    class Internet,Mobile,Partners external
    class CDN,FrontDoor,WAF,APIM,AppGW network
    class AKS,Services,Auth,Product,Order,Payment,Notification compute
    class SQL,Cosmos,Redis,Blob,Files data
    class AAD,KeyVault,Defender security
    class Monitor,AppInsights,LogAnalytics monitoring`

const dataPlatformTemplate = `graph LR
    %% Data Platform Architecture

    %% Data Sources
    subgraph Sources[Data Sources]
        OnPrem[On-Premises Data]
        SaaS[SaaS Applications]
        IoT[IoT Devices]
        Streaming[Streaming Data]
    end

    %% Ingestion Layer
    subgraph Ingestion[Data Ingestion]
        DataFactory[Azure Data Factory]
        EventHubs[Event Hubs]
        IoTHub[IoT Hub]
    end

    %% Storage Layer
    subgraph Storage[Storage Layer]
        DataLake[Data Lake Storage Gen2]
        subgraph Zones[Data Zones]
            Raw[Raw Zone]
            Curated[Curated Zone]
            Enriched[Enriched Zone]
        end
    end

    %% Processing Layer
    subgraph Processing[Data Processing]
        Synapse[Azure Synapse Analytics]
        Databricks[Azure Databricks]
        StreamAnalytics[Stream Analytics]
    end

    %% Serving Layer
    subgraph Serving[Data Serving]
        SQL[Azure SQL]
        Cosmos[Cosmos DB]
        Analysis[Analysis Services]
    end

    %% Analytics & AI
    subgraph Analytics[Analytics & AI]
        PowerBI[Power BI]
        MachineLearning[Azure Machine Learning]
        CognitiveServices[Cognitive Services]
    end

    %% Governance
    subgraph Governance[Data Governance]
        Purview[Microsoft Purview]
        Catalog[Data Catalog]
        Lineage[Data Lineage]
    end

    %% Security
    subgraph Security[Security & Compliance]
        KeyVault[Key Vault]
        AAD[Azure Active Directory]
        PrivateEndpoints[Private Endpoints]
    end

    %% Connections
    OnPrem --> DataFactory
    SaaS --> DataFactory
    IoT --> IoTHub
    Streaming --> EventHubs
    DataFactory --> Raw
    IoTHub --> Raw
    EventHubs --> StreamAnalytics
    StreamAnalytics --> Raw
    Raw --> Databricks
    Raw --> Synapse
    Databricks --> Curated
    Synapse --> Curated
    Curated --> Enriched
    Enriched --> SQL
    Enriched --> Cosmos
    Enriched --> Analysis
    SQL --> PowerBI
    Analysis --> PowerBI
    Enriched --> MachineLearning
    MachineLearning --> CognitiveServices
    DataLake --> Purview
    Purview --> Catalog
    Catalog --> Lineage
    AAD --> Synapse
    AAD --> Databricks
    KeyVault --> DataFactory

    %% Styling
    classDef source fill:#FFE6CC,stroke:#D79B00,stroke-width:2px
    classDef ingestion fill:#DAE8FC,stroke:#6C8EBF,stroke-width:2px
    classDef storage fill:#D5E8D4,stroke:#82B366,stroke-width:2px
    classDef processing fill:#E1D5E7,stroke:#9673A6,stroke-width:2px
    classDef serving fill:#F8CECC,stroke:#B85450,stroke-width:2px
    classDef analytics fill:#FFF2CC,stroke:#D6B656,stroke-width:2px

    class OnPrem,SaaS,IoT,Streaming source
    class DataFactory,EventHubs,IoTHub ingestion
    class DataLake,Raw,Curated,Enriched storage
    class Synapse,Databricks,StreamAnalytics processing
    class SQL,Cosmos,Analysis serving
    class PowerBI,MachineLearning,CognitiveServices analytics`

const aiSolutionTemplate = `graph TB
    %% AI Solution Architecture - Chat with Your Data Pattern

    %% Document Ingestion Layer
    subgraph Ingestion[Document Ingestion & Management]
        subgraph DataSources[Data Sources]
            Storage[Azure Storage<br/>Documents & Files]
            SQL[Azure SQL Database<br/>Structured Data]
            Cosmos[Azure Cosmos DB<br/>NoSQL Data]
        end

        subgraph Processing[Document Processing]
            DocIntel[Azure AI Document<br/>Intelligence]
            Functions[Azure Functions<br/>Processing Pipeline]
        end
    end

    %% AI Processing Layer
    subgraph AILayer[AI Processing]
        OpenAI[Azure OpenAI Service<br/>GPT-4 Models]
        AISearch[Azure AI Search<br/>Vector Store & Indexing]
        Embeddings[Embedding Service<br/>Text Vectorization]
    end

    %% Application Layer
    subgraph Application[Application Services]
        AdminUI[Admin UI]
        ChatAPI[Chat Backend]
        WebApp[Web Application]
    end

    %% User Interface Layer
    subgraph UserInterface[User Experience]
        SpeechService[Azure Speech Service<br/>Voice Interface]
        Users[End Users<br/>Chat Interface]
    end

    %% Supporting Services
    subgraph Support[Supporting Services]
        KeyVault[Azure Key Vault<br/>Secrets Management]
        AAD[Azure Active Directory<br/>Authentication]
        Monitor[Azure Monitor<br/>Observability]
    end

    %% Data Flow - Ingestion
    Storage --> DocIntel
    SQL --> Functions
    Cosmos --> Functions
    DocIntel --> Functions
    Functions -->|Extract & Chunk| Embeddings
    Embeddings -->|Create Vectors| AISearch

    %% Data Flow - Query Processing
    Users --> WebApp
    WebApp --> ChatAPI
    ChatAPI -->|User Query| Embeddings
    Embeddings -->|Query Vector| AISearch
    AISearch -->|Relevant Docs| ChatAPI
    ChatAPI -->|Context + Query| OpenAI
    OpenAI -->|Generated Response| ChatAPI
    ChatAPI --> WebApp
    WebApp --> Users

    %% Voice Integration
    Users -.->|Voice Input| SpeechService
    SpeechService -.-> ChatAPI
    ChatAPI -.-> SpeechService
    SpeechService -.->|Voice Output| Users

    %% Admin Flow
    AdminUI --> Functions
    AdminUI --> AISearch

    %% Security Flow
    AAD --> WebApp
    AAD --> ChatAPI
    AAD --> AdminUI
    KeyVault --> ChatAPI
    KeyVault --> Functions
    Monitor --> Application

    %% Styling
    classDef storage fill:#E8F5E9,stroke:#4CAF50,stroke-width:2px
    classDef ai fill:#E3F2FD,stroke:#2196F3,stroke-width:2px
    classDef app fill:#F3E5F5,stroke:#9C27B0,stroke-width:2px
    classDef user fill:#FFF3E0,stroke:#FF9800,stroke-width:2px
    classDef security fill:#FFEBEE,stroke:#F44336,stroke-width:2px

    class Storage,SQL,Cosmos storage
    class OpenAI,AISearch,Embeddings,DocIntel ai
    class AdminUI,ChatAPI,WebApp,Functions app
    class SpeechService,Users user
    class KeyVault,AAD,Monitor security`

const hybridTemplate = `graph TB
    %% Hybrid Cloud Architecture

    %% On-Premises Environment
    subgraph OnPrem[On-Premises Data Center]
        subgraph OnPremApps[Applications]
            LegacyApp[Legacy Applications]
            Database[SQL Server]
            FileServer[File Servers]
        end
        subgraph OnPremInfra[Infrastructure]
            AD[Active Directory]
            VMware[VMware vSphere]
            Storage[SAN Storage]
        end
    end

    %% Connectivity Layer
    subgraph Connectivity[Hybrid Connectivity]
        ExpressRoute[Azure ExpressRoute]
        VPNGateway[VPN Gateway]
        ArcServer[Azure Arc Servers]
    end

    %% Azure Environment
    subgraph Azure[Azure Cloud]
        subgraph Management[Hybrid Management]
            Arc[Azure Arc]
            Policy[Azure Policy]
            Monitor[Azure Monitor]
        end
        subgraph CloudApps[Cloud Applications]
            AppService[App Service]
            AKS[Azure Kubernetes]
            Functions[Azure Functions]
        end
        subgraph Data[Data Services]
            SQLManaged[SQL Managed Instance]
            DataSync[Azure File Sync]
            Backup[Azure Backup]
        end
    end

    %% Disaster Recovery
    subgraph DR[Disaster Recovery]
        SiteRecovery[Azure Site Recovery]
        BackupVault[Recovery Services Vault]
    end

    %% Connections
    LegacyApp --> ExpressRoute
    Database --> VPNGateway
    FileServer --> DataSync
    VMware --> ArcServer
    Storage --> Backup
    ExpressRoute --> Azure
    VPNGateway --> Azure
    ArcServer --> Arc
    Arc --> Policy
    Arc --> Monitor
    Database --> SQLManaged
    OnPremApps --> SiteRecovery
    SiteRecovery --> BackupVault

    %% Styling
    classDef onprem fill:#FFE6CC,stroke:#D79B00,stroke-width:2px
    classDef connect fill:#DAE8FC,stroke:#6C8EBF,stroke-width:2px
    classDef azure fill:#E1D5E7,stroke:#9673A6,stroke-width:2px
    classDef dr fill:#F8CECC,stroke:#B85450,stroke-width:2px

    class LegacyApp,Database,FileServer,AD,VMware,Storage onprem
    class ExpressRoute,VPNGateway,ArcServer connect
    class Arc,Policy,Monitor,AppService,AKS,Functions,SQLManaged,DataSync,Backup azure
    class SiteRecovery,BackupVault dr`
